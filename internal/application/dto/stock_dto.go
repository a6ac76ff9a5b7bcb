package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alvear-textil/deposito-api/internal/domain/entity"
)

// IngresoHiloRequest body para POST /api/deposito/agregar-hilo.
// Según el formato se leen los campos de cajas o de pallets.
type IngresoHiloRequest struct {
	TipoHilado     string `json:"tipo_hilado"`
	Titulo         string `json:"titulo"`
	Caracteristica string `json:"caracteristica"`
	Color          string `json:"color"`
	Lote           string `json:"lote"`
	Formato        string `json:"formato"`
	Ubicacion      string `json:"ubicacion"`
	Proveedor      string `json:"proveedor"`

	CantidadCajas   int             `json:"cantidad_cajas"`
	KilosPorCaja    decimal.Decimal `json:"kilos_por_caja"`
	ConosPorCaja    int             `json:"conos_por_caja"`
	DescripcionCono string          `json:"descripcion_cono"`

	CantidadPallets int             `json:"cantidad_pallets"`
	KilosPorPallet  decimal.Decimal `json:"kilos_por_pallet"`
	ConosPorPallet  int             `json:"conos_por_pallet"`

	Usuario string `json:"usuario"`
}

// ActualizarHiloRequest body para PUT /api/deposito/producto/:codigo.
// Solo los campos presentes se aplican. Cantidad y PrecioUnitario aceptan
// número o string numérico (se coercionan); el resto reemplaza textualmente.
type ActualizarHiloRequest struct {
	Tipo           *string `json:"tipo"`
	Titulo         *string `json:"titulo"`
	Caracteristica *string `json:"caracteristica"`
	Color          *string `json:"color"`
	Lote           *string `json:"lote"`
	Ubicacion      *string `json:"ubicacion"`
	Proveedor      *string `json:"proveedor"`

	Cantidad        any              `json:"cantidad"`
	PrecioUnitario  any              `json:"precio_unitario"`
	KilosPorCaja    *decimal.Decimal `json:"kilos_por_caja"`
	ConosPorCaja    *int             `json:"conos_por_caja"`
	KilosPorPallet  *decimal.Decimal `json:"kilos_por_pallet"`
	ConosPorPallet  *int             `json:"conos_por_pallet"`
	DescripcionCono *string          `json:"descripcion_cono"`

	Usuario string `json:"usuario"`
}

// HiloResponse representación plana de un lote para la API.
type HiloResponse struct {
	Codigo             string           `json:"codigo"`
	Tipo               string           `json:"tipo"`
	Titulo             string           `json:"titulo"`
	Caracteristica     string           `json:"caracteristica"`
	Color              string           `json:"color"`
	Formato            string           `json:"formato"`
	Lote               string           `json:"lote"`
	Ubicacion          string           `json:"ubicacion"`
	Proveedor          string           `json:"proveedor"`
	Cantidad           int              `json:"cantidad"`
	PrecioUnitario     *decimal.Decimal `json:"precio_unitario,omitempty"`
	KilosPorCaja       *decimal.Decimal `json:"kilos_por_caja,omitempty"`
	ConosPorCaja       *int             `json:"conos_por_caja,omitempty"`
	KilosPorPallet     *decimal.Decimal `json:"kilos_por_pallet,omitempty"`
	ConosPorPallet     *int             `json:"conos_por_pallet,omitempty"`
	DescripcionCono    string           `json:"descripcion_cono,omitempty"`
	FechaIngreso       string           `json:"fecha_ingreso,omitempty"`
	UltimaModificacion string           `json:"ultima_modificacion,omitempty"`
}

// AHiloResponse mapea la entidad a su representación de API.
func AHiloResponse(h *entity.Hilo) *HiloResponse {
	if h == nil {
		return nil
	}
	out := &HiloResponse{
		Codigo:         h.Codigo,
		Tipo:           h.Tipo,
		Titulo:         h.Titulo,
		Caracteristica: h.Caracteristica,
		Color:          h.Color,
		Formato:        h.Formato,
		Lote:           h.Lote,
		Ubicacion:      h.Ubicacion,
		Proveedor:      h.Proveedor,
		Cantidad:       h.Cantidad,
	}
	if !h.PrecioUnitario.IsZero() {
		precio := h.PrecioUnitario
		out.PrecioUnitario = &precio
	}
	if h.Cajas != nil {
		kilos := h.Cajas.KilosPorCaja
		conos := h.Cajas.ConosPorCaja
		out.KilosPorCaja = &kilos
		out.ConosPorCaja = &conos
		out.DescripcionCono = h.Cajas.DescripcionCono
	}
	if h.Pallet != nil {
		kilos := h.Pallet.KilosPorPallet
		conos := h.Pallet.ConosPorPallet
		out.KilosPorPallet = &kilos
		out.ConosPorPallet = &conos
		out.DescripcionCono = h.Pallet.DescripcionCono
	}
	if !h.FechaIngreso.IsZero() {
		out.FechaIngreso = h.FechaIngreso.Format(time.RFC3339)
	}
	if !h.UltimaModificacion.IsZero() {
		out.UltimaModificacion = h.UltimaModificacion.Format(time.RFC3339)
	}
	return out
}

// AStockResponse mapea el snapshot completo, código -> lote.
func AStockResponse(stock map[string]*entity.Hilo) map[string]*HiloResponse {
	out := make(map[string]*HiloResponse, len(stock))
	for codigo, h := range stock {
		out[codigo] = AHiloResponse(h)
	}
	return out
}
