package catalogo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvear-textil/deposito-api/internal/domain/catalogo"
	"github.com/alvear-textil/deposito-api/internal/domain/entity"
)

func TestTipos_OrdenEstable(t *testing.T) {
	assert.Equal(t,
		[]string{"Algodón", "Snow", "Spun", "Poal", "Melange", "Poliester", "Elastano"},
		catalogo.Tipos())
}

func TestTitulos_TipoConocido(t *testing.T) {
	assert.Equal(t, []string{"20/1", "30/1"}, catalogo.Titulos("Snow"))
}

func TestTitulos_TipoDesconocidoDevuelveVacio(t *testing.T) {
	assert.Empty(t, catalogo.Titulos("Seda"))
	assert.NotNil(t, catalogo.Titulos("Seda"), "lista vacía, no nil, para serializar como []")
}

func TestCaracteristicas_Algodon(t *testing.T) {
	assert.Equal(t,
		[]string{"Peinado", "Cardado", "Super Cardado", "Open End"},
		catalogo.Caracteristicas("Algodón", "30/1"))
}

func TestCaracteristicas_MelangeNoPublica(t *testing.T) {
	// Melange sí existe en el catálogo pero sus porcentajes no se exponen como
	// característica consultable.
	assert.Empty(t, catalogo.Caracteristicas("Melange", "20/1"))
	assert.NotNil(t, catalogo.Caracteristicas("Melange", "20/1"))
}

func TestCaracteristicas_TituloDesconocidoDevuelveVacio(t *testing.T) {
	assert.Empty(t, catalogo.Caracteristicas("Algodón", "99/1"))
}

func TestCompleto_DevuelveCopia(t *testing.T) {
	c := catalogo.Completo()
	require.Contains(t, c, "Algodón")
	c["Algodón"]["30/1"][0] = "mutado"

	assert.Equal(t, "Peinado", catalogo.Completo()["Algodón"]["30/1"][0],
		"mutar lo devuelto no debe afectar el catálogo")
}

func TestUmbralesPorDefecto_CubrenTodosLosTipos(t *testing.T) {
	u := catalogo.UmbralesPorDefecto()
	for _, tipo := range catalogo.Tipos() {
		formatos, ok := u[tipo]
		require.True(t, ok, "falta umbral por defecto para %s", tipo)
		assert.Contains(t, formatos, entity.FormatoCajas)
		assert.Contains(t, formatos, entity.FormatoPalletizado)
	}
}

func TestProveedores_DevuelveCopia(t *testing.T) {
	p := catalogo.Proveedores()
	require.Contains(t, p, "Tecotex")
	prov := p["Tecotex"]
	prov.Productos[0] = "mutado"

	assert.Equal(t, "Algodón", catalogo.Proveedores()["Tecotex"].Productos[0])
}
