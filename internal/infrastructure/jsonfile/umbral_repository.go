package jsonfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alvear-textil/deposito-api/internal/domain"
	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	"github.com/alvear-textil/deposito-api/internal/domain/repository"
)

var _ repository.UmbralRepository = (*UmbralRepo)(nil)

// UmbralRepo persiste la tabla de umbrales en dir/umbrales_config.json.
type UmbralRepo struct {
	path string
}

// NewUmbralRepository construye el adaptador.
func NewUmbralRepository(dir string) *UmbralRepo {
	return &UmbralRepo{path: filepath.Join(dir, ArchivoUmbrales)}
}

// Load devuelve la tabla persistida; domain.ErrNotFound si el archivo no existe.
func (r *UmbralRepo) Load() (entity.Umbrales, error) {
	var u entity.Umbrales
	if err := leerJSON(r.path, &u); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("cargar umbrales: %w", err)
	}
	return u, nil
}

// Replace sobreescribe la tabla completa.
func (r *UmbralRepo) Replace(u entity.Umbrales) error {
	if err := escribirJSON(r.path, u); err != nil {
		return fmt.Errorf("guardar umbrales: %w", err)
	}
	return nil
}
