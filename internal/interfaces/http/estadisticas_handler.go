package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alvear-textil/deposito-api/internal/application/estadisticas"
)

// EstadisticasHandler expone las vistas derivadas del stock.
type EstadisticasHandler struct {
	uc *estadisticas.UseCase
}

// NewEstadisticasHandler construye el handler.
func NewEstadisticasHandler(uc *estadisticas.UseCase) *EstadisticasHandler {
	return &EstadisticasHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Estadísticas generales del dashboard
// @Tags         estadisticas
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *EstadisticasHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.uc.Dashboard())
}

// Estadisticas godoc
// @Summary      Estadísticas detalladas (cuatro estados de stock)
// @Tags         estadisticas
// @Produce      json
// @Success      200  {object}  dto.EstadisticasResponse
// @Router       /api/estadisticas [get]
func (h *EstadisticasHandler) Estadisticas(c *fiber.Ctx) error {
	return c.JSON(h.uc.Detalladas())
}

// Graficos godoc
// @Summary      Series para los gráficos del dashboard
// @Tags         estadisticas
// @Produce      json
// @Success      200  {object}  dto.GraficosResponse
// @Router       /api/graficos [get]
func (h *EstadisticasHandler) Graficos(c *fiber.Ctx) error {
	return c.JSON(h.uc.Graficos())
}
