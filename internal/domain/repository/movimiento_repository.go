package repository

import "github.com/alvear-textil/deposito-api/internal/domain/entity"

// MovimientoRepository puerto del registro de movimientos (solo inserción).
type MovimientoRepository interface {
	// Append inserta el movimiento al inicio (más reciente primero) y recorta
	// la secuencia persistida a entity.MaxMovimientosGuardados entradas.
	Append(m *entity.Movimiento) error
	// ListAll devuelve los movimientos guardados, del más reciente al más antiguo.
	ListAll() ([]*entity.Movimiento, error)
}
