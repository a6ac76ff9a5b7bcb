package respaldo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	"github.com/alvear-textil/deposito-api/internal/infrastructure/respaldo"
	"github.com/alvear-textil/deposito-api/pkg/logger"
)

var errCaido = errors.New("backend caído")

// stockFake implementa StockRepository en memoria con fallos inyectables.
type stockFake struct {
	datos map[string]*entity.Hilo
	falla bool
	saves int
}

func (f *stockFake) LoadAll() (map[string]*entity.Hilo, error) {
	if f.falla {
		return nil, errCaido
	}
	return f.datos, nil
}

func (f *stockFake) SaveAll(stock map[string]*entity.Hilo) error {
	if f.falla {
		return errCaido
	}
	f.saves++
	f.datos = stock
	return nil
}

type movimientosFake struct {
	lista []*entity.Movimiento
	falla bool
}

func (f *movimientosFake) Append(m *entity.Movimiento) error {
	if f.falla {
		return errCaido
	}
	f.lista = append([]*entity.Movimiento{m}, f.lista...)
	return nil
}

func (f *movimientosFake) ListAll() ([]*entity.Movimiento, error) {
	if f.falla {
		return nil, errCaido
	}
	return f.lista, nil
}

type umbralesFake struct {
	tabla entity.Umbrales
	falla bool
}

func (f *umbralesFake) Load() (entity.Umbrales, error) {
	if f.falla {
		return nil, errCaido
	}
	return f.tabla, nil
}

func (f *umbralesFake) Replace(u entity.Umbrales) error {
	if f.falla {
		return errCaido
	}
	f.tabla = u
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

func TestStock_PrimarioSanoNoTocaElRespaldo(t *testing.T) {
	primario := &stockFake{datos: map[string]*entity.Hilo{"A": {Codigo: "A"}}}
	secundario := &stockFake{falla: true} // si se tocara, fallaría
	s := respaldo.NewStock(primario, secundario, logger.Nop())

	stock, err := s.LoadAll()
	require.NoError(t, err)
	assert.Contains(t, stock, "A")
}

func TestStock_PrimarioCaidoLeeDelRespaldo(t *testing.T) {
	primario := &stockFake{falla: true}
	secundario := &stockFake{datos: map[string]*entity.Hilo{"B": {Codigo: "B"}}}
	s := respaldo.NewStock(primario, secundario, logger.Nop())

	stock, err := s.LoadAll()
	require.NoError(t, err)
	assert.Contains(t, stock, "B")
}

func TestStock_AmbosCaidosDevuelveVacioSinError(t *testing.T) {
	s := respaldo.NewStock(&stockFake{falla: true}, &stockFake{falla: true}, logger.Nop())

	stock, err := s.LoadAll()
	require.NoError(t, err, "una lectura nunca devuelve error, degrada a vacío")
	assert.NotNil(t, stock)
	assert.Empty(t, stock)
}

func TestStock_GuardadoCaeAlRespaldo(t *testing.T) {
	primario := &stockFake{falla: true}
	secundario := &stockFake{}
	s := respaldo.NewStock(primario, secundario, logger.Nop())

	require.NoError(t, s.SaveAll(map[string]*entity.Hilo{"A": {Codigo: "A"}}))
	assert.Equal(t, 1, secundario.saves)
}

func TestStock_GuardadoConAmbosCaidosSiPropagaError(t *testing.T) {
	s := respaldo.NewStock(&stockFake{falla: true}, &stockFake{falla: true}, logger.Nop())

	err := s.SaveAll(map[string]*entity.Hilo{})
	assert.Error(t, err, "a diferencia de las lecturas, perder una escritura sí es un error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos y umbrales
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimientos_AppendCaeAlRespaldo(t *testing.T) {
	secundario := &movimientosFake{}
	m := respaldo.NewMovimientos(&movimientosFake{falla: true}, secundario, logger.Nop())

	require.NoError(t, m.Append(&entity.Movimiento{Codigo: "A"}))
	require.Len(t, secundario.lista, 1)
}

func TestMovimientos_AmbosCaidosDevuelveVacio(t *testing.T) {
	m := respaldo.NewMovimientos(&movimientosFake{falla: true}, &movimientosFake{falla: true}, logger.Nop())

	lista, err := m.ListAll()
	require.NoError(t, err)
	assert.Empty(t, lista)
}

func TestUmbrales_LoadCaeAlRespaldo(t *testing.T) {
	secundario := &umbralesFake{tabla: entity.Umbrales{"Snow": {entity.FormatoCajas: 8}}}
	u := respaldo.NewUmbrales(&umbralesFake{falla: true}, secundario, logger.Nop())

	tabla, err := u.Load()
	require.NoError(t, err)
	assert.Equal(t, 8, tabla.Umbral("Snow", entity.FormatoCajas, 0))
}

func TestUmbrales_ReplaceCaeAlRespaldo(t *testing.T) {
	secundario := &umbralesFake{}
	u := respaldo.NewUmbrales(&umbralesFake{falla: true}, secundario, logger.Nop())

	require.NoError(t, u.Replace(entity.Umbrales{"Poal": {entity.FormatoCajas: 12}}))
	assert.Equal(t, 12, secundario.tabla.Umbral("Poal", entity.FormatoCajas, 0))
}
