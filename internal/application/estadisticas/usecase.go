package estadisticas

import (
	"time"

	"github.com/alvear-textil/deposito-api/internal/application/dto"
	appstock "github.com/alvear-textil/deposito-api/internal/application/stock"
	"github.com/alvear-textil/deposito-api/internal/application/umbrales"
)

// UseCase expone las vistas derivadas del stock: dashboard, estadísticas
// detalladas, gráficos y reporte general. Cada llamada trabaja sobre un
// snapshot fresco; nada se cachea entre requests.
type UseCase struct {
	stock    *appstock.UseCase
	umbrales *umbrales.UseCase
	ahora    func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(stock *appstock.UseCase, umbrales *umbrales.UseCase) *UseCase {
	return &UseCase{stock: stock, umbrales: umbrales, ahora: time.Now}
}

// Dashboard estadísticas generales (clasificación binaria).
func (uc *UseCase) Dashboard() dto.DashboardResponse {
	return CalcularDashboard(uc.stock.Listar(), uc.umbrales.Obtener())
}

// Detalladas estadísticas con los cuatro estados de stock.
func (uc *UseCase) Detalladas() dto.EstadisticasResponse {
	return CalcularDetalladas(uc.stock.Listar(), uc.umbrales.Obtener())
}

// Graficos series por tipo y por ubicación.
func (uc *UseCase) Graficos() dto.GraficosResponse {
	return CalcularGraficos(uc.stock.Listar())
}

// Reporte reporte general de stock con filas ordenadas.
func (uc *UseCase) Reporte() dto.ReporteStockResponse {
	return GenerarReporte(uc.stock.Listar(), uc.umbrales.Obtener(), uc.ahora())
}
