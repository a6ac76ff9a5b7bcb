package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alvear-textil/deposito-api/internal/application/dto"
	"github.com/alvear-textil/deposito-api/internal/application/estadisticas"
	"github.com/alvear-textil/deposito-api/internal/application/reporte"
)

// ReporteHandler genera el reporte de stock general (JSON y PDF).
type ReporteHandler struct {
	uc  *estadisticas.UseCase
	pdf *reporte.PDFGenerator
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *estadisticas.UseCase, pdf *reporte.PDFGenerator) *ReporteHandler {
	return &ReporteHandler{uc: uc, pdf: pdf}
}

// StockGeneral godoc
// @Summary      Reporte general de stock (filas ordenadas por criticidad)
// @Tags         reportes
// @Produce      json
// @Success      200  {object}  dto.ReporteStockResponse
// @Router       /api/reporte/stock-general [get]
func (h *ReporteHandler) StockGeneral(c *fiber.Ctx) error {
	return c.JSON(h.uc.Reporte())
}

// StockGeneralPDF godoc
// @Summary      Reporte general de stock en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reporte/stock-general/pdf [get]
func (h *ReporteHandler) StockGeneralPDF(c *fiber.Ctx) error {
	datos, err := h.pdf.GenerarStockGeneral(h.uc.Reporte())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "no se pudo generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-stock-general.pdf"`)
	return c.Send(datos)
}
