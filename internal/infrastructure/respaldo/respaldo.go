// Package respaldo compone un backend primario con uno secundario: cada
// operación intenta primero contra el primario y, si este falla, cae al
// respaldo registrando el error. Un fallo de ambos en lectura degrada a la
// colección vacía para que el dashboard siga siendo renderizable; nunca se
// propaga como caída del proceso.
package respaldo

import (
	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	"github.com/alvear-textil/deposito-api/internal/domain/repository"
	"github.com/alvear-textil/deposito-api/pkg/logger"
)

var _ repository.StockRepository = (*Stock)(nil)

// Stock decorador con respaldo para StockRepository.
type Stock struct {
	primario repository.StockRepository
	respaldo repository.StockRepository
	log      *logger.Logger
}

// NewStock construye el decorador.
func NewStock(primario, respaldo repository.StockRepository, log *logger.Logger) *Stock {
	return &Stock{primario: primario, respaldo: respaldo, log: log}
}

// LoadAll intenta el primario, luego el respaldo; si ambos fallan devuelve el
// ledger vacío (nunca un error).
func (s *Stock) LoadAll() (map[string]*entity.Hilo, error) {
	stock, err := s.primario.LoadAll()
	if err == nil {
		return stock, nil
	}
	s.log.Error().Err(err).Msg("stock: backend primario no disponible, usando respaldo")

	stock, err = s.respaldo.LoadAll()
	if err == nil {
		return stock, nil
	}
	s.log.Error().Err(err).Msg("stock: respaldo tampoco disponible, devolviendo vacío")
	return map[string]*entity.Hilo{}, nil
}

// SaveAll escribe en el primario; si falla, escribe en el respaldo.
func (s *Stock) SaveAll(stock map[string]*entity.Hilo) error {
	err := s.primario.SaveAll(stock)
	if err == nil {
		return nil
	}
	s.log.Error().Err(err).Msg("stock: fallo al guardar en primario, usando respaldo")

	if err := s.respaldo.SaveAll(stock); err != nil {
		s.log.Error().Err(err).Msg("stock: fallo al guardar también en respaldo")
		return err
	}
	return nil
}

var _ repository.MovimientoRepository = (*Movimientos)(nil)

// Movimientos decorador con respaldo para MovimientoRepository.
type Movimientos struct {
	primario repository.MovimientoRepository
	respaldo repository.MovimientoRepository
	log      *logger.Logger
}

// NewMovimientos construye el decorador.
func NewMovimientos(primario, respaldo repository.MovimientoRepository, log *logger.Logger) *Movimientos {
	return &Movimientos{primario: primario, respaldo: respaldo, log: log}
}

// Append intenta el primario y cae al respaldo.
func (m *Movimientos) Append(mov *entity.Movimiento) error {
	err := m.primario.Append(mov)
	if err == nil {
		return nil
	}
	m.log.Error().Err(err).Msg("movimientos: fallo al registrar en primario, usando respaldo")
	return m.respaldo.Append(mov)
}

// ListAll intenta el primario, luego el respaldo; ambos caídos devuelve vacío.
func (m *Movimientos) ListAll() ([]*entity.Movimiento, error) {
	lista, err := m.primario.ListAll()
	if err == nil {
		return lista, nil
	}
	m.log.Error().Err(err).Msg("movimientos: backend primario no disponible, usando respaldo")

	lista, err = m.respaldo.ListAll()
	if err == nil {
		return lista, nil
	}
	m.log.Error().Err(err).Msg("movimientos: respaldo tampoco disponible, devolviendo vacío")
	return nil, nil
}

var _ repository.UmbralRepository = (*Umbrales)(nil)

// Umbrales decorador con respaldo para UmbralRepository.
type Umbrales struct {
	primario repository.UmbralRepository
	respaldo repository.UmbralRepository
	log      *logger.Logger
}

// NewUmbrales construye el decorador.
func NewUmbrales(primario, respaldo repository.UmbralRepository, log *logger.Logger) *Umbrales {
	return &Umbrales{primario: primario, respaldo: respaldo, log: log}
}

// Load intenta el primario y cae al respaldo. El caso "ninguno tiene tabla"
// se resuelve arriba con la tabla por defecto, no acá.
func (u *Umbrales) Load() (entity.Umbrales, error) {
	tabla, err := u.primario.Load()
	if err == nil {
		return tabla, nil
	}
	u.log.Warn().Err(err).Msg("umbrales: backend primario no disponible, usando respaldo")
	return u.respaldo.Load()
}

// Replace escribe en el primario; si falla, en el respaldo.
func (u *Umbrales) Replace(tabla entity.Umbrales) error {
	err := u.primario.Replace(tabla)
	if err == nil {
		return nil
	}
	u.log.Error().Err(err).Msg("umbrales: fallo al guardar en primario, usando respaldo")
	return u.respaldo.Replace(tabla)
}
