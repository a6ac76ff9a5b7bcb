package stock

import "github.com/alvear-textil/deposito-api/internal/domain/entity"

// Estados de stock para estadísticas detalladas y reportes.
const (
	EstadoCritico = "Crítico"
	EstadoBajo    = "Bajo"
	EstadoNormal  = "Normal"
	EstadoExceso  = "Exceso"
)

// Umbrales por defecto de cada esquema de clasificación. Los dos esquemas
// divergen a propósito y deben mantenerse separados: el dashboard trata un
// par (tipo, formato) ausente como umbral 0 (nunca crítico), mientras que las
// estadísticas detalladas y el reporte asumen 10.
const (
	UmbralDefectoDashboard = 0
	UmbralDefectoDetalle   = 10
)

// UmbralCritico deriva el umbral crítico del umbral bajo: la mitad (división
// entera), nunca menor que 1.
func UmbralCritico(umbralBajo int) int {
	if c := umbralBajo / 2; c > 1 {
		return c
	}
	return 1
}

// UmbralExceso deriva el umbral de exceso: el triple del umbral bajo.
func UmbralExceso(umbralBajo int) int {
	return umbralBajo * 3
}

// EsCriticoDashboard implementa la clasificación binaria del dashboard:
// un lote es crítico si su cantidad no supera el umbral de su (tipo, formato).
// Sin umbral configurado el umbral efectivo es 0, por lo que el lote nunca es
// crítico salvo con cantidad 0 o negativa.
func EsCriticoDashboard(h *entity.Hilo, umbrales entity.Umbrales) bool {
	umbral := umbrales.Umbral(h.Tipo, h.Formato, UmbralDefectoDashboard)
	return h.Cantidad <= umbral
}

// Clasificar implementa la clasificación detallada en cuatro estados.
// Con umbral bajo u (10 si el par no está configurado):
//
//	Crítico si cantidad == 0 o cantidad <= max(1, u/2)
//	Bajo    si cantidad <= u
//	Exceso  si cantidad >= u*3
//	Normal  en el resto
func Clasificar(cantidad int, umbralBajo int) string {
	switch {
	case cantidad == 0 || cantidad <= UmbralCritico(umbralBajo):
		return EstadoCritico
	case cantidad <= umbralBajo:
		return EstadoBajo
	case cantidad >= UmbralExceso(umbralBajo):
		return EstadoExceso
	default:
		return EstadoNormal
	}
}

// ClasificarHilo aplica Clasificar con el umbral del lote.
func ClasificarHilo(h *entity.Hilo, umbrales entity.Umbrales) string {
	return Clasificar(h.Cantidad, umbrales.Umbral(h.Tipo, h.Formato, UmbralDefectoDetalle))
}

// EstadoReporte clasifica para el reporte de stock general, que no maneja
// exceso: Crítico, Bajo o Normal según los mismos umbrales del detalle.
func EstadoReporte(cantidad int, umbralBajo int) string {
	switch {
	case cantidad <= UmbralCritico(umbralBajo):
		return EstadoCritico
	case cantidad <= umbralBajo:
		return EstadoBajo
	default:
		return EstadoNormal
	}
}
