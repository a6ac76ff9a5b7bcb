package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formatos de presentación de un lote.
const (
	FormatoCajas       = "cajas"
	FormatoPalletizado = "Palletizado"
)

// KilosPorCajaEstimado se usa para el total de kilos cuando un lote en cajas
// no tiene kilos por caja cargados.
var KilosPorCajaEstimado = decimal.NewFromInt(25)

// EmpaqueCajas dimensionamiento de un lote en cajas.
type EmpaqueCajas struct {
	KilosPorCaja    decimal.Decimal
	ConosPorCaja    int
	DescripcionCono string
}

// EmpaquePallet dimensionamiento de un lote palletizado.
type EmpaquePallet struct {
	KilosPorPallet  decimal.Decimal
	ConosPorPallet  int
	DescripcionCono string
}

// Hilo representa un lote físico de hilado en el depósito.
// El código es función determinística de los atributos (ver stock.GenerarCodigo);
// dos ingresos con los mismos atributos acumulan cantidad sobre el mismo registro.
//
// Formato etiqueta la variante: Cajas está poblado solo para FormatoCajas y
// Pallet solo para FormatoPalletizado.
type Hilo struct {
	Codigo         string
	Tipo           string
	Titulo         string
	Caracteristica string
	Color          string
	Formato        string
	Lote           string
	Ubicacion      string
	Proveedor      string
	Cantidad       int
	PrecioUnitario decimal.Decimal

	Cajas  *EmpaqueCajas
	Pallet *EmpaquePallet

	FechaIngreso       time.Time
	UltimaModificacion time.Time
}

// KilosTotales devuelve los kilos del lote. Solo los lotes en cajas aportan al
// total; sin kilos por caja cargados se estima con KilosPorCajaEstimado.
func (h *Hilo) KilosTotales() decimal.Decimal {
	if h.Formato != FormatoCajas {
		return decimal.Zero
	}
	cantidad := decimal.NewFromInt(int64(h.Cantidad))
	if h.Cajas != nil && h.Cajas.KilosPorCaja.IsPositive() {
		return cantidad.Mul(h.Cajas.KilosPorCaja)
	}
	return cantidad.Mul(KilosPorCajaEstimado)
}

// ValorEstimado devuelve el valor del lote a precioPorKilo para los formatos
// con kilos conocidos; para otros formatos usa cantidad * precio unitario.
func (h *Hilo) ValorEstimado(precioPorKilo decimal.Decimal) decimal.Decimal {
	cantidad := decimal.NewFromInt(int64(h.Cantidad))
	switch h.Formato {
	case FormatoCajas:
		kilos := decimal.Zero
		if h.Cajas != nil {
			kilos = h.Cajas.KilosPorCaja
		}
		return cantidad.Mul(kilos).Mul(precioPorKilo)
	case FormatoPalletizado:
		kilos := decimal.Zero
		if h.Pallet != nil {
			kilos = h.Pallet.KilosPorPallet
		}
		return cantidad.Mul(kilos).Mul(precioPorKilo)
	default:
		return cantidad.Mul(h.PrecioUnitario)
	}
}

// Clonar devuelve una copia profunda del lote.
func (h *Hilo) Clonar() *Hilo {
	c := *h
	if h.Cajas != nil {
		cajas := *h.Cajas
		c.Cajas = &cajas
	}
	if h.Pallet != nil {
		pallet := *h.Pallet
		c.Pallet = &pallet
	}
	return &c
}
