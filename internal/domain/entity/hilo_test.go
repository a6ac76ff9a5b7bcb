package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/alvear-textil/deposito-api/internal/domain/entity"
)

func TestKilosTotales_CajasConKilosCargados(t *testing.T) {
	h := &entity.Hilo{
		Formato:  entity.FormatoCajas,
		Cantidad: 4,
		Cajas:    &entity.EmpaqueCajas{KilosPorCaja: decimal.NewFromInt(20)},
	}
	assert.True(t, decimal.NewFromInt(80).Equal(h.KilosTotales()))
}

func TestKilosTotales_CajasSinKilosUsaEstimado(t *testing.T) {
	h := &entity.Hilo{Formato: entity.FormatoCajas, Cantidad: 4}
	assert.True(t, decimal.NewFromInt(100).Equal(h.KilosTotales()),
		"sin kilos por caja cargados se estima a 25 kg por caja")

	h.Cajas = &entity.EmpaqueCajas{} // kilos en cero también dispara el estimado
	assert.True(t, decimal.NewFromInt(100).Equal(h.KilosTotales()))
}

func TestKilosTotales_PalletizadoNoAportaKilos(t *testing.T) {
	h := &entity.Hilo{
		Formato:  entity.FormatoPalletizado,
		Cantidad: 4,
		Pallet:   &entity.EmpaquePallet{KilosPorPallet: decimal.NewFromInt(500)},
	}
	assert.True(t, h.KilosTotales().IsZero(),
		"solo los lotes en cajas aportan al total de kilos")
}

func TestValorEstimado_PorFormato(t *testing.T) {
	precio := decimal.NewFromInt(10)

	cajas := &entity.Hilo{
		Formato:  entity.FormatoCajas,
		Cantidad: 3,
		Cajas:    &entity.EmpaqueCajas{KilosPorCaja: decimal.NewFromInt(25)},
	}
	assert.True(t, decimal.NewFromInt(750).Equal(cajas.ValorEstimado(precio)))

	pallet := &entity.Hilo{
		Formato:  entity.FormatoPalletizado,
		Cantidad: 2,
		Pallet:   &entity.EmpaquePallet{KilosPorPallet: decimal.NewFromInt(500)},
	}
	assert.True(t, decimal.NewFromInt(10000).Equal(pallet.ValorEstimado(precio)))
}

func TestClonar_CopiaProfunda(t *testing.T) {
	h := &entity.Hilo{
		Codigo:   "X",
		Formato:  entity.FormatoCajas,
		Cantidad: 1,
		Cajas:    &entity.EmpaqueCajas{ConosPorCaja: 12},
	}
	c := h.Clonar()
	c.Cantidad = 99
	c.Cajas.ConosPorCaja = 1

	assert.Equal(t, 1, h.Cantidad, "mutar el clon no debe tocar el original")
	assert.Equal(t, 12, h.Cajas.ConosPorCaja)
}

func TestUmbrales_UmbralConDefecto(t *testing.T) {
	u := entity.Umbrales{"Algodón": {entity.FormatoCajas: 10}}

	assert.Equal(t, 10, u.Umbral("Algodón", entity.FormatoCajas, 0))
	assert.Equal(t, 0, u.Umbral("Algodón", entity.FormatoPalletizado, 0), "formato no configurado usa el defecto")
	assert.Equal(t, 10, u.Umbral("Snow", entity.FormatoCajas, 10), "tipo no configurado usa el defecto")
}

func TestUmbrales_ClonarEsIndependiente(t *testing.T) {
	u := entity.Umbrales{"Algodón": {entity.FormatoCajas: 10}}
	c := u.Clonar()
	c["Algodón"][entity.FormatoCajas] = 99

	assert.Equal(t, 10, u["Algodón"][entity.FormatoCajas])
}
