// Package estadisticas es el motor de estadísticas y reportes: funciones
// puras sobre un snapshot del stock y la tabla de umbrales vigente.
//
// Conviven dos esquemas de clasificación que divergen a propósito (ver
// internal/domain/stock): el dashboard usa el esquema binario con umbral por
// defecto 0 y las estadísticas detalladas el esquema de cuatro estados con
// umbral por defecto 10. No unificar: los consumidores dependen de los
// números exactos que produce cada uno.
package estadisticas

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/alvear-textil/deposito-api/internal/application/dto"
	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	dstock "github.com/alvear-textil/deposito-api/internal/domain/stock"
)

// PrecioEstimadoPorKilo precio de referencia para el valor total del stock.
var PrecioEstimadoPorKilo = decimal.NewFromInt(10)

// Etiquetas para lotes sin tipo/ubicación en los gráficos.
const (
	sinTipo      = "Sin tipo"
	sinUbicacion = "Sin ubicación"
)

// CalcularDashboard computa las estadísticas generales del dashboard con la
// clasificación binaria (crítico si cantidad <= umbral; par ausente = 0).
func CalcularDashboard(stock map[string]*entity.Hilo, umbrales entity.Umbrales) dto.DashboardResponse {
	total := len(stock)
	criticos := 0
	sinStock := 0
	valorTotal := decimal.Zero

	for _, h := range stock {
		if h.Cantidad == 0 {
			sinStock++
		}
		if dstock.EsCriticoDashboard(h, umbrales) {
			criticos++
		}
		valorTotal = valorTotal.Add(h.ValorEstimado(PrecioEstimadoPorKilo))
	}

	porcentaje := 0.0
	if total > 0 {
		porcentaje = math.Round(float64(criticos)/float64(total)*1000) / 10
	}
	return dto.DashboardResponse{
		TotalProductos:     total,
		ProductosCriticos:  criticos,
		ValorTotalStock:    valorTotal.InexactFloat64(),
		ProductosSinStock:  sinStock,
		PorcentajeCriticos: porcentaje,
	}
}

// CalcularDetalladas computa las estadísticas detalladas: kilos totales,
// productos activos, ubicaciones distintas y los cuatro estados de stock.
func CalcularDetalladas(stock map[string]*entity.Hilo, umbrales entity.Umbrales) dto.EstadisticasResponse {
	out := dto.EstadisticasResponse{TotalProductos: len(stock)}
	totalKilos := decimal.Zero
	ubicaciones := map[string]struct{}{}

	for _, h := range stock {
		if h.Cantidad > 0 {
			out.ProductosActivos++
		}
		if h.Ubicacion != "" {
			ubicaciones[h.Ubicacion] = struct{}{}
		}
		totalKilos = totalKilos.Add(h.KilosTotales())

		switch dstock.ClasificarHilo(h, umbrales) {
		case dstock.EstadoCritico:
			out.StockCritico++
		case dstock.EstadoBajo:
			out.StockBajo++
		case dstock.EstadoExceso:
			out.StockExceso++
		default:
			out.StockNormal++
		}
	}

	out.Ubicaciones = len(ubicaciones)
	out.TotalKilos = totalKilos.Round(1).InexactFloat64()
	return out
}

// CalcularGraficos computa las sumas de cantidad por tipo y por ubicación
// para los gráficos del dashboard, con labels en orden alfabético estable.
func CalcularGraficos(stock map[string]*entity.Hilo) dto.GraficosResponse {
	porTipo := map[string]int{}
	porUbicacion := map[string]int{}

	for _, h := range stock {
		tipo := h.Tipo
		if tipo == "" {
			tipo = sinTipo
		}
		ubicacion := h.Ubicacion
		if ubicacion == "" {
			ubicacion = sinUbicacion
		}
		porTipo[tipo] += h.Cantidad
		porUbicacion[ubicacion] += h.Cantidad
	}

	return dto.GraficosResponse{
		PorTipo:      aSerie(porTipo),
		PorUbicacion: aSerie(porUbicacion),
	}
}

func aSerie(sumas map[string]int) dto.SerieGrafico {
	c := collate.New(language.Spanish)
	labels := make([]string, 0, len(sumas))
	for label := range sumas {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return c.CompareString(labels[i], labels[j]) < 0
	})
	data := make([]int, len(labels))
	for i, label := range labels {
		data[i] = sumas[label]
	}
	return dto.SerieGrafico{Labels: labels, Data: data}
}

// GenerarReporte arma el reporte de stock general: una fila por lote con su
// estado (esquema del reporte: Crítico/Bajo/Normal, umbral por defecto 10),
// la antigüedad en días y los umbrales aplicados. Las filas se ordenan con
// críticos primero, luego bajos, y dentro de cada grupo alfabéticamente por
// tipo y título (colación española).
func GenerarReporte(stock map[string]*entity.Hilo, umbrales entity.Umbrales, ahora time.Time) dto.ReporteStockResponse {
	// Orden base determinístico por código antes de clasificar.
	codigos := make([]string, 0, len(stock))
	for codigo := range stock {
		codigos = append(codigos, codigo)
	}
	sort.Strings(codigos)

	filas := make([]dto.FilaReporte, 0, len(stock))
	totalCajas := 0
	criticos := 0

	for _, codigo := range codigos {
		h := stock[codigo]
		umbralBajo := umbrales.Umbral(h.Tipo, h.Formato, dstock.UmbralDefectoDetalle)
		umbralCritico := dstock.UmbralCritico(umbralBajo)
		estado := dstock.EstadoReporte(h.Cantidad, umbralBajo)

		estadoColor := "success"
		switch estado {
		case dstock.EstadoCritico:
			estadoColor = "danger"
			criticos++
		case dstock.EstadoBajo:
			estadoColor = "warning"
		}

		fechaIngreso := ""
		dias := 0
		if !h.FechaIngreso.IsZero() {
			fechaIngreso = h.FechaIngreso.Format(time.RFC3339)
			dias = int(ahora.Sub(h.FechaIngreso).Hours() / 24)
		}

		filas = append(filas, dto.FilaReporte{
			Codigo:         h.Codigo,
			Tipo:           h.Tipo,
			Titulo:         h.Titulo,
			Caracteristica: h.Caracteristica,
			Color:          h.Color,
			Cantidad:       h.Cantidad,
			Formato:        h.Formato,
			Ubicacion:      h.Ubicacion,
			Proveedor:      h.Proveedor,
			Lote:           h.Lote,
			FechaIngreso:   fechaIngreso,
			DiasStock:      dias,
			Estado:         estado,
			EstadoColor:    estadoColor,
			UmbralBajo:     umbralBajo,
			UmbralCritico:  umbralCritico,
		})
		totalCajas += h.Cantidad
	}

	c := collate.New(language.Spanish)
	sort.SliceStable(filas, func(i, j int) bool {
		a, b := filas[i], filas[j]
		if (a.Estado != dstock.EstadoCritico) != (b.Estado != dstock.EstadoCritico) {
			return a.Estado == dstock.EstadoCritico
		}
		if (a.Estado != dstock.EstadoBajo) != (b.Estado != dstock.EstadoBajo) {
			return a.Estado == dstock.EstadoBajo
		}
		if cmp := c.CompareString(a.Tipo, b.Tipo); cmp != 0 {
			return cmp < 0
		}
		return c.CompareString(a.Titulo, b.Titulo) < 0
	})

	return dto.ReporteStockResponse{
		TotalProductos:    len(filas),
		TotalCajas:        totalCajas,
		ProductosCriticos: criticos,
		FechaReporte:      ahora.Format(time.RFC3339),
		Productos:         filas,
	}
}
