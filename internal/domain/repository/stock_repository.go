package repository

import "github.com/alvear-textil/deposito-api/internal/domain/entity"

// StockRepository puerto de persistencia del stock. El depósito trabaja
// siempre sobre la colección completa: cada request carga el snapshot actual
// y cada mutación lo persiste entero (el backend resuelve altas, cambios y
// bajas por diferencia).
type StockRepository interface {
	// LoadAll devuelve el snapshot actual, mapa código -> lote.
	LoadAll() (map[string]*entity.Hilo, error)
	// SaveAll persiste el snapshot completo: los códigos presentes se insertan
	// o actualizan y los ausentes se eliminan del backend.
	SaveAll(stock map[string]*entity.Hilo) error
}
