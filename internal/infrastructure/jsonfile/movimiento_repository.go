package jsonfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	"github.com/alvear-textil/deposito-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo persiste los movimientos como arreglo JSON, más reciente primero.
type MovimientoRepo struct {
	path string
}

// NewMovimientoRepository construye el adaptador sobre dir/movimientos.json.
func NewMovimientoRepository(dir string) *MovimientoRepo {
	return &MovimientoRepo{path: filepath.Join(dir, ArchivoMovimientos)}
}

type movimientoJSON struct {
	ID          string `json:"id"`
	Fecha       string `json:"fecha"`
	Tipo        string `json:"tipo"`
	Codigo      string `json:"codigo,omitempty"`
	Descripcion string `json:"descripcion"`
	Cantidad    int    `json:"cantidad"`
	Ubicacion   string `json:"ubicacion,omitempty"`
	Usuario     string `json:"usuario,omitempty"`
}

// Append inserta al inicio y recorta a entity.MaxMovimientosGuardados entradas.
func (r *MovimientoRepo) Append(m *entity.Movimiento) error {
	lista, err := r.leer()
	if err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	lista = append([]movimientoJSON{{
		ID:          m.ID,
		Fecha:       m.Fecha.Format(time.RFC3339),
		Tipo:        m.Tipo,
		Codigo:      m.Codigo,
		Descripcion: m.Descripcion,
		Cantidad:    m.Cantidad,
		Ubicacion:   m.Ubicacion,
		Usuario:     m.Usuario,
	}}, lista...)
	if len(lista) > entity.MaxMovimientosGuardados {
		lista = lista[:entity.MaxMovimientosGuardados]
	}
	if err := escribirJSON(r.path, lista); err != nil {
		return fmt.Errorf("guardar movimientos: %w", err)
	}
	return nil
}

// ListAll devuelve los movimientos guardados, del más reciente al más antiguo.
func (r *MovimientoRepo) ListAll() ([]*entity.Movimiento, error) {
	lista, err := r.leer()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Movimiento, 0, len(lista))
	for _, mj := range lista {
		out = append(out, &entity.Movimiento{
			ID:          mj.ID,
			Fecha:       parseFecha(mj.Fecha),
			Tipo:        mj.Tipo,
			Codigo:      mj.Codigo,
			Descripcion: mj.Descripcion,
			Cantidad:    mj.Cantidad,
			Ubicacion:   mj.Ubicacion,
			Usuario:     mj.Usuario,
		})
	}
	return out, nil
}

func (r *MovimientoRepo) leer() ([]movimientoJSON, error) {
	var lista []movimientoJSON
	if err := leerJSON(r.path, &lista); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("cargar movimientos: %w", err)
	}
	return lista, nil
}
