package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alvear-textil/deposito-api/internal/domain/catalogo"
)

// CatalogoHandler expone los datos maestros del depósito. Todos los
// endpoints son de solo lectura y no tocan la capa de persistencia.
type CatalogoHandler struct{}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler() *CatalogoHandler {
	return &CatalogoHandler{}
}

// Catalogo godoc
// @Summary      Catálogo completo de hilados (tipo -> título -> características)
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  map[string]map[string][]string
// @Router       /api/catalogo [get]
func (h *CatalogoHandler) Catalogo(c *fiber.Ctx) error {
	return c.JSON(catalogo.Completo())
}

// Tipos devuelve los tipos de hilado disponibles.
func (h *CatalogoHandler) Tipos(c *fiber.Ctx) error {
	return c.JSON(catalogo.Tipos())
}

// Titulos devuelve los títulos disponibles para un tipo.
func (h *CatalogoHandler) Titulos(c *fiber.Ctx) error {
	return c.JSON(catalogo.Titulos(c.Params("tipo")))
}

// Caracteristicas devuelve las características para un tipo y título.
func (h *CatalogoHandler) Caracteristicas(c *fiber.Ctx) error {
	return c.JSON(catalogo.Caracteristicas(c.Params("tipo"), c.Params("titulo")))
}

// Colores devuelve los colores disponibles.
func (h *CatalogoHandler) Colores(c *fiber.Ctx) error {
	return c.JSON(catalogo.Colores())
}

// Formatos devuelve los formatos de presentación.
func (h *CatalogoHandler) Formatos(c *fiber.Ctx) error {
	return c.JSON(catalogo.Formatos())
}

// Ubicaciones devuelve las ubicaciones del depósito.
func (h *CatalogoHandler) Ubicaciones(c *fiber.Ctx) error {
	return c.JSON(catalogo.Ubicaciones())
}

// Proveedores devuelve los proveedores configurados.
func (h *CatalogoHandler) Proveedores(c *fiber.Ctx) error {
	return c.JSON(catalogo.Proveedores())
}

// ParametrosCarga devuelve los parámetros de carga por defecto.
func (h *CatalogoHandler) ParametrosCarga(c *fiber.Ctx) error {
	return c.JSON(catalogo.ParametrosCargaPorDefecto())
}
