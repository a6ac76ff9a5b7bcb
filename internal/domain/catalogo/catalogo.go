// Package catalogo contiene los datos maestros del depósito: catálogo de
// hilados, colores, formatos, ubicaciones, proveedores, parámetros de carga y
// umbrales por defecto. Todo es de solo lectura; los accesores devuelven
// copias para que ningún consumidor pueda mutar el estado compartido.
package catalogo

import "github.com/alvear-textil/deposito-api/internal/domain/entity"

// Proveedor datos de presentación de un proveedor de hilados.
type Proveedor struct {
	Nombre              string   `json:"nombre"`
	Descripcion         string   `json:"descripcion"`
	LogoURL             string   `json:"logo_url"`
	ColoresCorporativos []string `json:"colores_corporativos"`
	Productos           []string `json:"productos"`
}

// ParametrosCajas parámetros de carga por defecto para el formato cajas.
type ParametrosCajas struct {
	KilosPorCaja    int    `json:"kilos_por_caja"`
	ConosPorCaja    int    `json:"conos_por_caja"`
	DescripcionCono string `json:"descripcion_cono"`
}

// ParametrosPallet parámetros de carga por defecto para el formato palletizado.
type ParametrosPallet struct {
	KilosPorPallet int    `json:"kilos_por_pallet"`
	CajasPorPallet int    `json:"cajas_por_pallet"`
	Descripcion    string `json:"descripcion"`
}

// ParametrosCarga parámetros de carga por defecto por formato.
type ParametrosCarga struct {
	Cajas       ParametrosCajas  `json:"cajas"`
	Palletizado ParametrosPallet `json:"Palletizado"`
}

var caracteristicasAlgodon = []string{"Peinado", "Cardado", "Super Cardado", "Open End"}
var caracteristicaEstandar = []string{"Estándar"}
var porcentajesMelange = []string{"6%", "15%", "25%", "50%", "75%", "100%"}

// catalogoDeHilos: tipo de hilado -> título -> características disponibles.
var catalogoDeHilos = map[string]map[string][]string{
	"Algodón": {
		"10/1": caracteristicasAlgodon,
		"12/1": caracteristicasAlgodon,
		"14/1": caracteristicasAlgodon,
		"16/1": caracteristicasAlgodon,
		"20/1": caracteristicasAlgodon,
		"24/1": caracteristicasAlgodon,
		"28/1": caracteristicasAlgodon,
		"30/1": caracteristicasAlgodon,
	},
	"Snow": {
		"20/1": caracteristicaEstandar,
		"30/1": caracteristicaEstandar,
	},
	"Spun": {
		"24/1": caracteristicaEstandar,
		"30/1": caracteristicaEstandar,
	},
	"Poal": {
		"10/1": caracteristicaEstandar,
		"20/1": caracteristicaEstandar,
		"24/1": caracteristicaEstandar,
		"30/1": caracteristicaEstandar,
	},
	"Melange": {
		"20/1": porcentajesMelange,
		"24/1": porcentajesMelange,
		"30/1": porcentajesMelange,
	},
	"Poliester": {
		"75/72":   caracteristicaEstandar,
		"75/36":   caracteristicaEstandar,
		"150/48":  caracteristicaEstandar,
		"150/144": caracteristicaEstandar,
	},
	"Elastano": {
		"20": caracteristicaEstandar,
		"40": caracteristicaEstandar,
		"70": caracteristicaEstandar,
	},
}

// ordenTitulos fija el orden de presentación de los títulos por tipo.
var ordenTitulos = map[string][]string{
	"Algodón":   {"10/1", "12/1", "14/1", "16/1", "20/1", "24/1", "28/1", "30/1"},
	"Snow":      {"20/1", "30/1"},
	"Spun":      {"24/1", "30/1"},
	"Poal":      {"10/1", "20/1", "24/1", "30/1"},
	"Melange":   {"20/1", "24/1", "30/1"},
	"Poliester": {"75/72", "75/36", "150/48", "150/144"},
	"Elastano":  {"20", "40", "70"},
}

var listaDeColores = []string{"crudo", "blanco", "negro"}

var listaDeFormatos = []string{entity.FormatoCajas, entity.FormatoPalletizado}

var listaDeUbicaciones = []string{
	"deposito de descarga",
	"deposito principal",
	"deposito tejeduria",
	"deposito auxiliar",
}

var listaDeProveedores = map[string]Proveedor{
	"T&N Platex": {
		Nombre:              "T&N Platex",
		Descripcion:         "Empresa textil especializada en hilados de algodón",
		LogoURL:             "/static/images/proveedores/tn_platex.png",
		ColoresCorporativos: []string{"#4f46e5", "#ffffff"},
		Productos:           []string{"Algodón", "Melange"},
	},
	"Tecotex": {
		Nombre:              "Tecotex S.A.",
		Descripcion:         "Líderes en producción de hilado y tejido plano desde 1950",
		LogoURL:             "/static/images/proveedores/tecotex.png",
		ColoresCorporativos: []string{"#1a365d", "#ffffff"},
		Productos:           []string{"Algodón", "Snow", "Spun", "Poliester"},
	},
	"Emilio Alal": {
		Nombre:              "Emilio Alal S.A.",
		Descripcion:         "Empresa textil argentina con tradición en hilados especiales",
		LogoURL:             "/static/images/proveedores/emilio_alal.png",
		ColoresCorporativos: []string{"#059669", "#ffffff"},
		Productos:           []string{"Poal", "Elastano", "Melange"},
	},
}

var parametrosCargaDefault = ParametrosCarga{
	Cajas: ParametrosCajas{
		KilosPorCaja:    25,
		ConosPorCaja:    12,
		DescripcionCono: "Conos estándar",
	},
	Palletizado: ParametrosPallet{
		KilosPorPallet: 500,
		CajasPorPallet: 20,
		Descripcion:    "Pallet estándar",
	},
}

var umbralesPorDefecto = entity.Umbrales{
	"Algodón":   {entity.FormatoCajas: 10, entity.FormatoPalletizado: 3},
	"Snow":      {entity.FormatoCajas: 8, entity.FormatoPalletizado: 2},
	"Spun":      {entity.FormatoCajas: 8, entity.FormatoPalletizado: 2},
	"Poal":      {entity.FormatoCajas: 12, entity.FormatoPalletizado: 4},
	"Melange":   {entity.FormatoCajas: 6, entity.FormatoPalletizado: 2},
	"Poliester": {entity.FormatoCajas: 5, entity.FormatoPalletizado: 1},
	"Elastano":  {entity.FormatoCajas: 3, entity.FormatoPalletizado: 1},
}

// Completo devuelve el catálogo entero (tipo -> título -> características).
func Completo() map[string]map[string][]string {
	c := make(map[string]map[string][]string, len(catalogoDeHilos))
	for tipo, titulos := range catalogoDeHilos {
		tc := make(map[string][]string, len(titulos))
		for titulo, caracteristicas := range titulos {
			tc[titulo] = append([]string(nil), caracteristicas...)
		}
		c[tipo] = tc
	}
	return c
}

// Tipos devuelve los tipos de hilado disponibles, en orden estable.
func Tipos() []string {
	tipos := make([]string, 0, len(catalogoDeHilos))
	for _, t := range []string{"Algodón", "Snow", "Spun", "Poal", "Melange", "Poliester", "Elastano"} {
		if _, ok := catalogoDeHilos[t]; ok {
			tipos = append(tipos, t)
		}
	}
	return tipos
}

// Titulos devuelve los títulos disponibles para un tipo de hilado, en su
// orden de presentación. Tipo desconocido devuelve lista vacía.
func Titulos(tipo string) []string {
	titulos, ok := ordenTitulos[tipo]
	if !ok {
		return []string{}
	}
	return append([]string(nil), titulos...)
}

// Caracteristicas devuelve las características disponibles para un hilado.
// Melange no publica características por esta vía (sus porcentajes se listan
// como variantes de carga, no como característica consultable).
func Caracteristicas(tipo, titulo string) []string {
	if tipo == "Melange" {
		return []string{}
	}
	titulos, ok := catalogoDeHilos[tipo]
	if !ok {
		return []string{}
	}
	caracteristicas, ok := titulos[titulo]
	if !ok {
		return []string{}
	}
	return append([]string(nil), caracteristicas...)
}

// Colores devuelve los colores disponibles.
func Colores() []string {
	return append([]string(nil), listaDeColores...)
}

// Formatos devuelve los formatos de presentación.
func Formatos() []string {
	return append([]string(nil), listaDeFormatos...)
}

// Ubicaciones devuelve las ubicaciones de depósito.
func Ubicaciones() []string {
	return append([]string(nil), listaDeUbicaciones...)
}

// Proveedores devuelve la lista de proveedores configurados.
func Proveedores() map[string]Proveedor {
	p := make(map[string]Proveedor, len(listaDeProveedores))
	for clave, proveedor := range listaDeProveedores {
		proveedor.ColoresCorporativos = append([]string(nil), proveedor.ColoresCorporativos...)
		proveedor.Productos = append([]string(nil), proveedor.Productos...)
		p[clave] = proveedor
	}
	return p
}

// ParametrosCargaPorDefecto devuelve los parámetros de carga por defecto.
func ParametrosCargaPorDefecto() ParametrosCarga {
	return parametrosCargaDefault
}

// UmbralesPorDefecto devuelve la tabla de umbrales inicial.
func UmbralesPorDefecto() entity.Umbrales {
	return umbralesPorDefecto.Clonar()
}
