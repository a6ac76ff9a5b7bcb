package estadisticas_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvear-textil/deposito-api/internal/application/estadisticas"
	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	dstock "github.com/alvear-textil/deposito-api/internal/domain/stock"
)

func hiloCajas(codigo, tipo string, cantidad int, kilosPorCaja int64) *entity.Hilo {
	return &entity.Hilo{
		Codigo:   codigo,
		Tipo:     tipo,
		Titulo:   "30/1",
		Color:    "crudo",
		Formato:  entity.FormatoCajas,
		Cantidad: cantidad,
		Cajas:    &entity.EmpaqueCajas{KilosPorCaja: decimal.NewFromInt(kilosPorCaja)},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularDashboard_StockVacio(t *testing.T) {
	out := estadisticas.CalcularDashboard(map[string]*entity.Hilo{}, entity.Umbrales{})

	assert.Zero(t, out.TotalProductos)
	assert.Zero(t, out.ProductosCriticos)
	assert.Zero(t, out.PorcentajeCriticos, "sin productos el porcentaje es 0, no NaN")
}

func TestCalcularDashboard_CriticosYPorcentaje(t *testing.T) {
	umbrales := entity.Umbrales{"Algodón": {entity.FormatoCajas: 10}}
	stock := map[string]*entity.Hilo{
		"a": hiloCajas("a", "Algodón", 5, 25),  // 5 <= 10: crítico
		"b": hiloCajas("b", "Algodón", 10, 25), // 10 <= 10: crítico
		"c": hiloCajas("c", "Algodón", 11, 25), // no crítico
	}

	out := estadisticas.CalcularDashboard(stock, umbrales)
	assert.Equal(t, 3, out.TotalProductos)
	assert.Equal(t, 2, out.ProductosCriticos)
	assert.InDelta(t, 66.7, out.PorcentajeCriticos, 0.001, "2/3 redondeado a un decimal")
}

func TestCalcularDashboard_SinUmbralSoloSinStockEsCritico(t *testing.T) {
	stock := map[string]*entity.Hilo{
		"a": hiloCajas("a", "Snow", 0, 25),
		"b": hiloCajas("b", "Snow", 1, 25),
	}

	out := estadisticas.CalcularDashboard(stock, entity.Umbrales{})
	assert.Equal(t, 1, out.ProductosCriticos, "umbral efectivo 0: solo cantidad 0 queda crítica")
	assert.Equal(t, 1, out.ProductosSinStock)
}

func TestCalcularDashboard_ValorTotalA10PorKilo(t *testing.T) {
	stock := map[string]*entity.Hilo{
		"a": hiloCajas("a", "Algodón", 4, 25), // 4 * 25 kg * 10 $ = 1000
	}

	out := estadisticas.CalcularDashboard(stock, entity.Umbrales{})
	assert.InDelta(t, 1000.0, out.ValorTotalStock, 0.001)
}

func TestCalcularDashboard_CriticosMasNoCriticosIgualTotal(t *testing.T) {
	umbrales := entity.Umbrales{"Algodón": {entity.FormatoCajas: 7}}
	stock := map[string]*entity.Hilo{}
	for i, cantidad := range []int{0, 3, 7, 8, 20, 50} {
		codigo := string(rune('a' + i))
		stock[codigo] = hiloCajas(codigo, "Algodón", cantidad, 25)
	}

	out := estadisticas.CalcularDashboard(stock, umbrales)
	assert.LessOrEqual(t, out.ProductosCriticos, out.TotalProductos,
		"la clasificación binaria particiona el total")
}

// ──────────────────────────────────────────────────────────────────────────────
// Estadísticas detalladas
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularDetalladas_CuatroEstadosParticionanElTotal(t *testing.T) {
	umbrales := entity.Umbrales{"Algodón": {entity.FormatoCajas: 10}}
	stock := map[string]*entity.Hilo{
		"a": hiloCajas("a", "Algodón", 0, 25),  // crítico
		"b": hiloCajas("b", "Algodón", 5, 25),  // crítico (<= 5)
		"c": hiloCajas("c", "Algodón", 8, 25),  // bajo
		"d": hiloCajas("d", "Algodón", 15, 25), // normal
		"e": hiloCajas("e", "Algodón", 31, 25), // exceso (>= 30)
	}

	out := estadisticas.CalcularDetalladas(stock, umbrales)
	assert.Equal(t, 2, out.StockCritico)
	assert.Equal(t, 1, out.StockBajo)
	assert.Equal(t, 1, out.StockNormal)
	assert.Equal(t, 1, out.StockExceso)
	assert.Equal(t, out.TotalProductos,
		out.StockCritico+out.StockBajo+out.StockNormal+out.StockExceso,
		"cada producto cae en exactamente un estado")
}

func TestCalcularDetalladas_KilosActivosYUbicaciones(t *testing.T) {
	a := hiloCajas("a", "Algodón", 2, 20) // 40 kg
	a.Ubicacion = "deposito principal"
	b := hiloCajas("b", "Snow", 0, 25) // 0 kg, inactivo
	b.Ubicacion = "deposito principal"
	c := hiloCajas("c", "Spun", 3, 0) // sin kilos cargados: 3 * 25 estimado = 75 kg
	c.Ubicacion = "deposito auxiliar"

	out := estadisticas.CalcularDetalladas(map[string]*entity.Hilo{"a": a, "b": b, "c": c}, entity.Umbrales{})
	assert.Equal(t, 2, out.ProductosActivos)
	assert.Equal(t, 2, out.Ubicaciones)
	assert.InDelta(t, 115.0, out.TotalKilos, 0.001)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gráficos
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularGraficos_SumaPorTipoYUbicacion(t *testing.T) {
	a := hiloCajas("a", "Algodón", 5, 25)
	a.Ubicacion = "deposito principal"
	b := hiloCajas("b", "Algodón", 3, 25)
	b.Ubicacion = "deposito auxiliar"
	c := hiloCajas("c", "Snow", 2, 25)
	c.Ubicacion = "deposito principal"

	out := estadisticas.CalcularGraficos(map[string]*entity.Hilo{"a": a, "b": b, "c": c})

	require.Equal(t, []string{"Algodón", "Snow"}, out.PorTipo.Labels)
	assert.Equal(t, []int{8, 2}, out.PorTipo.Data)

	require.Equal(t, []string{"deposito auxiliar", "deposito principal"}, out.PorUbicacion.Labels)
	assert.Equal(t, []int{3, 5}, out.PorUbicacion.Data)
}

func TestCalcularGraficos_SinTipoNiUbicacion(t *testing.T) {
	h := &entity.Hilo{Codigo: "x", Formato: entity.FormatoCajas, Cantidad: 4}

	out := estadisticas.CalcularGraficos(map[string]*entity.Hilo{"x": h})
	assert.Equal(t, []string{"Sin tipo"}, out.PorTipo.Labels)
	assert.Equal(t, []string{"Sin ubicación"}, out.PorUbicacion.Labels)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de stock general
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarReporte_OrdenCriticosBajosNormales(t *testing.T) {
	umbrales := entity.Umbrales{
		"Algodón": {entity.FormatoCajas: 10},
		"Snow":    {entity.FormatoCajas: 10},
	}
	stock := map[string]*entity.Hilo{
		"n": hiloCajas("n", "Snow", 20, 25),   // normal
		"b": hiloCajas("b", "Algodón", 8, 25), // bajo
		"c": hiloCajas("c", "Algodón", 2, 25), // crítico
	}

	out := estadisticas.GenerarReporte(stock, umbrales, time.Now())
	require.Len(t, out.Productos, 3)
	assert.Equal(t, dstock.EstadoCritico, out.Productos[0].Estado)
	assert.Equal(t, dstock.EstadoBajo, out.Productos[1].Estado)
	assert.Equal(t, dstock.EstadoNormal, out.Productos[2].Estado)
	assert.Equal(t, 1, out.ProductosCriticos)
	assert.Equal(t, 30, out.TotalCajas)
}

func TestGenerarReporte_DentroDelGrupoOrdenaPorTipoYTitulo(t *testing.T) {
	umbrales := entity.Umbrales{}
	a := hiloCajas("a", "Snow", 50, 25)
	a.Titulo = "20/1"
	b := hiloCajas("b", "Algodón", 50, 25)
	b.Titulo = "30/1"
	c := hiloCajas("c", "Algodón", 50, 25)
	c.Titulo = "10/1"

	out := estadisticas.GenerarReporte(map[string]*entity.Hilo{"a": a, "b": b, "c": c}, umbrales, time.Now())
	require.Len(t, out.Productos, 3)
	assert.Equal(t, "Algodón", out.Productos[0].Tipo)
	assert.Equal(t, "10/1", out.Productos[0].Titulo)
	assert.Equal(t, "Algodón", out.Productos[1].Tipo)
	assert.Equal(t, "30/1", out.Productos[1].Titulo)
	assert.Equal(t, "Snow", out.Productos[2].Tipo)
}

func TestGenerarReporte_UmbralesYColoresPorFila(t *testing.T) {
	umbrales := entity.Umbrales{"Algodón": {entity.FormatoCajas: 10}}
	stock := map[string]*entity.Hilo{
		"c": hiloCajas("c", "Algodón", 2, 25),
	}

	out := estadisticas.GenerarReporte(stock, umbrales, time.Now())
	require.Len(t, out.Productos, 1)
	fila := out.Productos[0]
	assert.Equal(t, 10, fila.UmbralBajo)
	assert.Equal(t, 5, fila.UmbralCritico)
	assert.Equal(t, "danger", fila.EstadoColor)
}

func TestGenerarReporte_DiasDeStock(t *testing.T) {
	ahora := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	h := hiloCajas("a", "Algodón", 50, 25)
	h.FechaIngreso = ahora.AddDate(0, 0, -7)

	out := estadisticas.GenerarReporte(map[string]*entity.Hilo{"a": h}, entity.Umbrales{}, ahora)
	require.Len(t, out.Productos, 1)
	assert.Equal(t, 7, out.Productos[0].DiasStock)
	assert.Equal(t, ahora.Format(time.RFC3339), out.FechaReporte)
}

func TestGenerarReporte_SinFechaDeIngreso(t *testing.T) {
	h := hiloCajas("a", "Algodón", 50, 25)

	out := estadisticas.GenerarReporte(map[string]*entity.Hilo{"a": h}, entity.Umbrales{}, time.Now())
	require.Len(t, out.Productos, 1)
	assert.Empty(t, out.Productos[0].FechaIngreso)
	assert.Zero(t, out.Productos[0].DiasStock)
}
