package dto

// DashboardResponse estadísticas generales del dashboard del depósito
// (clasificación binaria: crítico / no crítico).
type DashboardResponse struct {
	TotalProductos     int     `json:"total_productos"`
	ProductosCriticos  int     `json:"productos_criticos"`
	ValorTotalStock    float64 `json:"valor_total_stock"`
	ProductosSinStock  int     `json:"productos_sin_stock"`
	PorcentajeCriticos float64 `json:"porcentaje_criticos"`
}

// EstadisticasResponse estadísticas detalladas (clasificación en cuatro estados).
type EstadisticasResponse struct {
	TotalProductos   int     `json:"total_productos"`
	TotalKilos       float64 `json:"total_kilos"`
	ProductosActivos int     `json:"productos_activos"`
	Ubicaciones      int     `json:"ubicaciones"`
	StockCritico     int     `json:"stock_critico"`
	StockBajo        int     `json:"stock_bajo"`
	StockNormal      int     `json:"stock_normal"`
	StockExceso      int     `json:"stock_exceso"`
}

// SerieGrafico labels y datos para un gráfico de torta/barras.
type SerieGrafico struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// GraficosResponse series para los gráficos del dashboard.
type GraficosResponse struct {
	PorTipo      SerieGrafico `json:"por_tipo"`
	PorUbicacion SerieGrafico `json:"por_ubicacion"`
}

// FilaReporte una fila del reporte de stock general.
type FilaReporte struct {
	Codigo         string `json:"codigo"`
	Tipo           string `json:"tipo"`
	Titulo         string `json:"titulo"`
	Caracteristica string `json:"caracteristica"`
	Color          string `json:"color"`
	Cantidad       int    `json:"cantidad"`
	Formato        string `json:"formato"`
	Ubicacion      string `json:"ubicacion"`
	Proveedor      string `json:"proveedor"`
	Lote           string `json:"lote"`
	FechaIngreso   string `json:"fecha_ingreso"`
	DiasStock      int    `json:"dias_stock"`
	Estado         string `json:"estado"`
	EstadoColor    string `json:"estado_color"`
	UmbralBajo     int    `json:"umbral_bajo"`
	UmbralCritico  int    `json:"umbral_critico"`
}

// ReporteStockResponse reporte general de stock: resumen + filas ordenadas
// (críticos primero, luego bajos, luego alfabético por tipo y título).
type ReporteStockResponse struct {
	TotalProductos    int           `json:"total_productos"`
	TotalCajas        int           `json:"total_cajas"`
	ProductosCriticos int           `json:"productos_criticos"`
	FechaReporte      string        `json:"fecha_reporte"`
	Productos         []FilaReporte `json:"productos"`
}
