// Package umbrales gestiona la tabla de umbrales de stock bajo.
package umbrales

import (
	"github.com/alvear-textil/deposito-api/internal/domain"
	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	"github.com/alvear-textil/deposito-api/internal/domain/repository"
	"github.com/alvear-textil/deposito-api/pkg/logger"
)

// UseCase carga y reemplaza la tabla de umbrales. Una tabla ausente o
// ilegible se resuelve con la tabla por defecto, nunca con un error.
type UseCase struct {
	repo       repository.UmbralRepository
	porDefecto entity.Umbrales
	log        *logger.Logger
}

// NewUseCase construye el caso de uso. porDefecto es la tabla semilla.
func NewUseCase(repo repository.UmbralRepository, porDefecto entity.Umbrales, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, porDefecto: porDefecto, log: log}
}

// Obtener devuelve la tabla persistida, o la tabla por defecto si no hay
// ninguna o la persistida es ilegible.
func (uc *UseCase) Obtener() entity.Umbrales {
	u, err := uc.repo.Load()
	if err != nil || len(u) == 0 {
		if err != nil && err != domain.ErrNotFound {
			uc.log.Warn().Err(err).Msg("umbrales: tabla ilegible, usando la tabla por defecto")
		}
		return uc.porDefecto.Clonar()
	}
	return u
}

// Reemplazar sobreescribe la tabla completa (sin merge parcial).
func (uc *UseCase) Reemplazar(u entity.Umbrales) error {
	if u == nil {
		return domain.ErrInvalidInput
	}
	return uc.repo.Replace(u)
}
