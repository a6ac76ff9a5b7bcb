package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alvear-textil/deposito-api/internal/application/dto"
	"github.com/alvear-textil/deposito-api/internal/application/umbrales"
	"github.com/alvear-textil/deposito-api/internal/domain/entity"
)

// UmbralHandler maneja la consulta y el reemplazo de la tabla de umbrales.
type UmbralHandler struct {
	uc *umbrales.UseCase
}

// NewUmbralHandler construye el handler.
func NewUmbralHandler(uc *umbrales.UseCase) *UmbralHandler {
	return &UmbralHandler{uc: uc}
}

// Obtener godoc
// @Summary      Obtener la tabla de umbrales de stock bajo
// @Tags         umbrales
// @Produce      json
// @Success      200  {object}  entity.Umbrales
// @Router       /api/umbrales [get]
func (h *UmbralHandler) Obtener(c *fiber.Ctx) error {
	return c.JSON(h.uc.Obtener())
}

// Reemplazar godoc
// @Summary      Reemplazar la tabla de umbrales completa
// @Tags         umbrales
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.MutacionResponse
// @Failure      400  {object}  dto.MutacionResponse
// @Router       /api/umbrales [post]
func (h *UmbralHandler) Reemplazar(c *fiber.Ctx) error {
	var u entity.Umbrales
	if err := c.BodyParser(&u); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MutacionResponse{Success: false, Error: "cuerpo inválido"})
	}
	if err := h.uc.Reemplazar(u); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MutacionResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(dto.MutacionResponse{Success: true, Message: "Umbrales actualizados correctamente"})
}
