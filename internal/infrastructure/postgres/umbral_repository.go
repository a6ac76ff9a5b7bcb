package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alvear-textil/deposito-api/internal/domain"
	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	"github.com/alvear-textil/deposito-api/internal/domain/repository"
)

var _ repository.UmbralRepository = (*UmbralRepo)(nil)

const claveUmbrales = "umbrales"

// UmbralRepo persiste la tabla de umbrales como una fila JSONB en configuracion.
type UmbralRepo struct {
	q Querier
}

// NewUmbralRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUmbralRepository(q Querier) *UmbralRepo {
	return &UmbralRepo{q: q}
}

// Load devuelve la tabla persistida; domain.ErrNotFound si no hay ninguna.
func (r *UmbralRepo) Load() (entity.Umbrales, error) {
	var raw []byte
	err := r.q.QueryRow(context.Background(),
		`SELECT valor FROM configuracion WHERE clave = $1`, claveUmbrales,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("load umbrales: %w", err)
	}
	var u entity.Umbrales
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode umbrales: %w", err)
	}
	return u, nil
}

// Replace sobreescribe la tabla completa.
func (r *UmbralRepo) Replace(u entity.Umbrales) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode umbrales: %w", err)
	}
	query := `
		INSERT INTO configuracion (clave, valor) VALUES ($1, $2)
		ON CONFLICT (clave) DO UPDATE SET valor = EXCLUDED.valor`
	if _, err := r.q.Exec(context.Background(), query, claveUmbrales, raw); err != nil {
		return fmt.Errorf("replace umbrales: %w", err)
	}
	return nil
}
