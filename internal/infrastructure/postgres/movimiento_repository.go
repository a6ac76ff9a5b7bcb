package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	"github.com/alvear-textil/deposito-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Append inserta el movimiento y recorta la tabla a los
// entity.MaxMovimientosGuardados más recientes.
func (r *MovimientoRepo) Append(m *entity.Movimiento) error {
	ctx := context.Background()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	insert := `
		INSERT INTO movimientos (id, fecha, tipo, codigo, descripcion, cantidad, ubicacion, usuario)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, insert,
		m.ID, m.Fecha, m.Tipo, m.Codigo, m.Descripcion, m.Cantidad, m.Ubicacion, m.Usuario,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}

	// Política de retención: descartar en silencio lo más antiguo.
	trim := `
		DELETE FROM movimientos
		WHERE id NOT IN (
			SELECT id FROM movimientos ORDER BY fecha DESC, id LIMIT $1
		)`
	if _, err := r.q.Exec(ctx, trim, entity.MaxMovimientosGuardados); err != nil {
		return fmt.Errorf("trim movimientos: %w", err)
	}
	return nil
}

// ListAll devuelve los movimientos guardados, del más reciente al más antiguo.
func (r *MovimientoRepo) ListAll() ([]*entity.Movimiento, error) {
	query := `
		SELECT id, fecha, tipo, codigo, descripcion, cantidad, ubicacion, usuario
		FROM movimientos ORDER BY fecha DESC, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(&m.ID, &m.Fecha, &m.Tipo, &m.Codigo, &m.Descripcion,
			&m.Cantidad, &m.Ubicacion, &m.Usuario); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
