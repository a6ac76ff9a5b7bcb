package umbrales_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvear-textil/deposito-api/internal/application/umbrales"
	"github.com/alvear-textil/deposito-api/internal/domain"
	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	"github.com/alvear-textil/deposito-api/pkg/logger"
)

type umbralesFake struct {
	tabla    entity.Umbrales
	fallaErr error
	replaced entity.Umbrales
}

func (f *umbralesFake) Load() (entity.Umbrales, error) {
	if f.fallaErr != nil {
		return nil, f.fallaErr
	}
	return f.tabla, nil
}

func (f *umbralesFake) Replace(u entity.Umbrales) error {
	f.replaced = u
	return nil
}

func tablaPorDefecto() entity.Umbrales {
	return entity.Umbrales{"Algodón": {entity.FormatoCajas: 10}}
}

func TestObtener_DevuelveLaTablaPersistida(t *testing.T) {
	repo := &umbralesFake{tabla: entity.Umbrales{"Snow": {entity.FormatoCajas: 8}}}
	uc := umbrales.NewUseCase(repo, tablaPorDefecto(), logger.Nop())

	u := uc.Obtener()
	assert.Equal(t, 8, u.Umbral("Snow", entity.FormatoCajas, 0))
}

func TestObtener_SinTablaUsaLaPorDefecto(t *testing.T) {
	repo := &umbralesFake{fallaErr: domain.ErrNotFound}
	uc := umbrales.NewUseCase(repo, tablaPorDefecto(), logger.Nop())

	u := uc.Obtener()
	assert.Equal(t, 10, u.Umbral("Algodón", entity.FormatoCajas, 0))
}

func TestObtener_TablaVaciaUsaLaPorDefecto(t *testing.T) {
	repo := &umbralesFake{tabla: entity.Umbrales{}}
	uc := umbrales.NewUseCase(repo, tablaPorDefecto(), logger.Nop())

	u := uc.Obtener()
	assert.Equal(t, 10, u.Umbral("Algodón", entity.FormatoCajas, 0))
}

func TestObtener_BackendCaidoUsaLaPorDefecto(t *testing.T) {
	repo := &umbralesFake{fallaErr: errors.New("sin conexión")}
	uc := umbrales.NewUseCase(repo, tablaPorDefecto(), logger.Nop())

	u := uc.Obtener()
	assert.Equal(t, 10, u.Umbral("Algodón", entity.FormatoCajas, 0),
		"un backend caído nunca rompe la consulta de umbrales")
}

func TestObtener_DevuelveUnaCopiaDeLaPorDefecto(t *testing.T) {
	repo := &umbralesFake{fallaErr: domain.ErrNotFound}
	porDefecto := tablaPorDefecto()
	uc := umbrales.NewUseCase(repo, porDefecto, logger.Nop())

	u := uc.Obtener()
	u["Algodón"][entity.FormatoCajas] = 99

	assert.Equal(t, 10, uc.Obtener().Umbral("Algodón", entity.FormatoCajas, 0),
		"mutar lo devuelto no debe contaminar la tabla semilla")
}

func TestReemplazar_PersisteLaTablaCompleta(t *testing.T) {
	repo := &umbralesFake{}
	uc := umbrales.NewUseCase(repo, tablaPorDefecto(), logger.Nop())

	nueva := entity.Umbrales{"Poal": {entity.FormatoCajas: 12}}
	require.NoError(t, uc.Reemplazar(nueva))
	assert.Equal(t, nueva, repo.replaced)
}

func TestReemplazar_TablaNilEsInvalida(t *testing.T) {
	uc := umbrales.NewUseCase(&umbralesFake{}, tablaPorDefecto(), logger.Nop())
	assert.ErrorIs(t, uc.Reemplazar(nil), domain.ErrInvalidInput)
}
