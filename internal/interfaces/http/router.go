package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alvear-textil/deposito-api/internal/application/estadisticas"
	"github.com/alvear-textil/deposito-api/internal/application/reporte"
	appstock "github.com/alvear-textil/deposito-api/internal/application/stock"
	"github.com/alvear-textil/deposito-api/internal/application/umbrales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC        *appstock.UseCase
	UmbralesUC     *umbrales.UseCase
	EstadisticasUC *estadisticas.UseCase
	PDF            *reporte.PDFGenerator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Stock del depósito
	deposito := api.Group("/deposito")
	stockHandler := NewStockHandler(deps.StockUC)
	deposito.Get("/productos", stockHandler.Productos)
	deposito.Get("/producto/:codigo", stockHandler.Producto)
	deposito.Post("/agregar-hilo", stockHandler.AgregarHilo)
	deposito.Put("/producto/:codigo", stockHandler.Actualizar)
	deposito.Delete("/producto/:codigo", stockHandler.Eliminar)

	// Movimientos
	movimientoHandler := NewMovimientoHandler(deps.StockUC)
	deposito.Get("/movimientos", movimientoHandler.Movimientos)

	// Umbrales
	umbralHandler := NewUmbralHandler(deps.UmbralesUC)
	api.Get("/umbrales", umbralHandler.Obtener)
	api.Post("/umbrales", umbralHandler.Reemplazar)

	// Estadísticas y gráficos
	estadisticasHandler := NewEstadisticasHandler(deps.EstadisticasUC)
	api.Get("/dashboard", estadisticasHandler.Dashboard)
	api.Get("/estadisticas", estadisticasHandler.Estadisticas)
	api.Get("/graficos", estadisticasHandler.Graficos)

	// Reportes
	reporteHandler := NewReporteHandler(deps.EstadisticasUC, deps.PDF)
	api.Get("/reporte/stock-general", reporteHandler.StockGeneral)
	api.Get("/reporte/stock-general/pdf", reporteHandler.StockGeneralPDF)

	// Catálogo (datos maestros, solo lectura)
	catalogoHandler := NewCatalogoHandler()
	api.Get("/catalogo", catalogoHandler.Catalogo)
	api.Get("/tipos-hilo", catalogoHandler.Tipos)
	api.Get("/titulos/:tipo", catalogoHandler.Titulos)
	api.Get("/caracteristicas/:tipo/:titulo", catalogoHandler.Caracteristicas)
	api.Get("/colores", catalogoHandler.Colores)
	api.Get("/formatos", catalogoHandler.Formatos)
	api.Get("/ubicaciones", catalogoHandler.Ubicaciones)
	api.Get("/proveedores", catalogoHandler.Proveedores)
	api.Get("/parametros-carga", catalogoHandler.ParametrosCarga)
}
