package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alvear-textil/deposito-api/internal/application/dto"
	appstock "github.com/alvear-textil/deposito-api/internal/application/stock"
	"github.com/alvear-textil/deposito-api/internal/domain/entity"
)

// MovimientoHandler maneja las consultas al registro de movimientos.
type MovimientoHandler struct {
	uc *appstock.UseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *appstock.UseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Movimientos godoc
// @Summary      Listar movimientos del depósito (más reciente primero)
// @Tags         deposito
// @Produce      json
// @Param        limite  query  int  false  "Máximo de entradas"
// @Success      200  {array}  dto.MovimientoResponse
// @Router       /api/deposito/movimientos [get]
func (h *MovimientoHandler) Movimientos(c *fiber.Ctx) error {
	lista := h.uc.Movimientos(c.QueryInt("limite", 0))

	out := make([]dto.MovimientoResponse, 0, len(lista))
	for _, m := range lista {
		out = append(out, dto.AMovimientoResponse(m))
	}
	if len(out) == 0 {
		// Placeholder de presentación: el registro vacío se muestra como una
		// única entrada informativa, no como lista vacía.
		out = append(out, dto.MovimientoResponse{
			Fecha:       time.Now().Format(time.RFC3339),
			Tipo:        entity.MovimientoINFO,
			Descripcion: "Sin movimientos registrados",
		})
	}
	return c.JSON(out)
}
