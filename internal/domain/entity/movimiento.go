package entity

import "time"

// Tipos de movimiento del depósito.
const (
	MovimientoINGRESO = "INGRESO" // alta de un lote nuevo
	MovimientoAJUSTE  = "AJUSTE"  // cambio de cantidad sobre un lote existente
	MovimientoEGRESO  = "EGRESO"  // baja de un lote
	MovimientoINFO    = "INFO"    // entrada informativa (solo presentación)
)

// MaxMovimientosGuardados es el tope de retención del registro de movimientos:
// tras cada alta se conservan solo los más recientes.
const MaxMovimientosGuardados = 100

// Movimiento es una entrada de auditoría de un cambio de stock.
// Solo se agregan al inicio (más reciente primero); nunca se editan.
type Movimiento struct {
	ID          string
	Fecha       time.Time
	Tipo        string // INGRESO, AJUSTE, EGRESO, INFO
	Codigo      string
	Descripcion string
	Cantidad    int // delta con signo
	Ubicacion   string
	Usuario     string
}
