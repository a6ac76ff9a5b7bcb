package repository

import "github.com/alvear-textil/deposito-api/internal/domain/entity"

// UmbralRepository puerto de persistencia de la tabla de umbrales.
type UmbralRepository interface {
	// Load devuelve la tabla persistida; domain.ErrNotFound si no hay ninguna.
	Load() (entity.Umbrales, error)
	// Replace sobreescribe la tabla completa (sin merge parcial).
	Replace(u entity.Umbrales) error
}
