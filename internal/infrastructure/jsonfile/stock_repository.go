package jsonfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	"github.com/alvear-textil/deposito-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo persiste el stock como documento JSON keyed por código.
type StockRepo struct {
	path string
}

// NewStockRepository construye el adaptador sobre dir/stock.json.
func NewStockRepository(dir string) *StockRepo {
	return &StockRepo{path: filepath.Join(dir, ArchivoStock)}
}

// hiloJSON forma plana del documento persistido: los campos de
// dimensionamiento de ambos formatos conviven al tope del objeto y solo se
// serializan los del formato del lote.
type hiloJSON struct {
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

// LoadAll devuelve el snapshot completo, mapa código -> lote.
func (r *StockRepo) LoadAll() (map[string]*entity.Hilo, error) {
	var doc map[string]hiloJSON
	if err := leerJSON(r.path, &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]*entity.Hilo{}, nil
		}
		return nil, fmt.Errorf("cargar stock: %w", err)
	}
	stock := make(map[string]*entity.Hilo, len(doc))
	for codigo, hj := range doc {
		stock[codigo] = hj.aEntidad(codigo)
	}
	return stock, nil
}

// SaveAll sobreescribe el documento completo.
func (r *StockRepo) SaveAll(stock map[string]*entity.Hilo) error {
	doc := make(map[string]hiloJSON, len(stock))
	for codigo, h := range stock {
		doc[codigo] = aJSON(h)
	}
	if err := escribirJSON(r.path, doc); err != nil {
		return fmt.Errorf("guardar stock: %w", err)
	}
	return nil
}

func aJSON(h *entity.Hilo) hiloJSON {
	hj := hiloJSON{
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
		hj.PrecioUnitario = &precio
	}
	if h.Cajas != nil {
		kilos := h.Cajas.KilosPorCaja
		conos := h.Cajas.ConosPorCaja
		hj.KilosPorCaja = &kilos
		hj.ConosPorCaja = &conos
		hj.DescripcionCono = h.Cajas.DescripcionCono
	}
	if h.Pallet != nil {
		kilos := h.Pallet.KilosPorPallet
		conos := h.Pallet.ConosPorPallet
		hj.KilosPorPallet = &kilos
		hj.ConosPorPallet = &conos
		hj.DescripcionCono = h.Pallet.DescripcionCono
	}
	if !h.FechaIngreso.IsZero() {
		hj.FechaIngreso = h.FechaIngreso.Format(time.RFC3339)
	}
	if !h.UltimaModificacion.IsZero() {
		hj.UltimaModificacion = h.UltimaModificacion.Format(time.RFC3339)
	}
	return hj
}

func (hj hiloJSON) aEntidad(codigo string) *entity.Hilo {
	h := &entity.Hilo{
		Codigo:         codigo,
		Tipo:           hj.Tipo,
		Titulo:         hj.Titulo,
		Caracteristica: hj.Caracteristica,
		Color:          hj.Color,
		Formato:        hj.Formato,
		Lote:           hj.Lote,
		Ubicacion:      hj.Ubicacion,
		Proveedor:      hj.Proveedor,
		Cantidad:       hj.Cantidad,
		// Una fecha ilegible o ausente queda en cero; nunca es un error.
		FechaIngreso:       parseFecha(hj.FechaIngreso),
		UltimaModificacion: parseFecha(hj.UltimaModificacion),
	}
	if hj.PrecioUnitario != nil {
		h.PrecioUnitario = *hj.PrecioUnitario
	}
	switch hj.Formato {
	case entity.FormatoPalletizado:
		pallet := entity.EmpaquePallet{DescripcionCono: hj.DescripcionCono}
		if hj.KilosPorPallet != nil {
			pallet.KilosPorPallet = *hj.KilosPorPallet
		}
		if hj.ConosPorPallet != nil {
			pallet.ConosPorPallet = *hj.ConosPorPallet
		}
		h.Pallet = &pallet
	default:
		cajas := entity.EmpaqueCajas{DescripcionCono: hj.DescripcionCono}
		if hj.KilosPorCaja != nil {
			cajas.KilosPorCaja = *hj.KilosPorCaja
		}
		if hj.ConosPorCaja != nil {
			cajas.ConosPorCaja = *hj.ConosPorCaja
		}
		h.Cajas = &cajas
	}
	return h
}

func parseFecha(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
