package dto

import (
	"time"

	"github.com/alvear-textil/deposito-api/internal/domain/entity"
)

// MovimientoResponse una entrada del registro de movimientos.
type MovimientoResponse struct {
	Fecha       string `json:"fecha"`
	Tipo        string `json:"tipo"`
	Codigo      string `json:"codigo,omitempty"`
	Descripcion string `json:"descripcion"`
	Cantidad    int    `json:"cantidad"`
	Ubicacion   string `json:"ubicacion,omitempty"`
	Usuario     string `json:"usuario,omitempty"`
}

// AMovimientoResponse mapea la entidad a su representación de API.
func AMovimientoResponse(m *entity.Movimiento) MovimientoResponse {
	fecha := ""
	if !m.Fecha.IsZero() {
		fecha = m.Fecha.Format(time.RFC3339)
	}
	return MovimientoResponse{
		Fecha:       fecha,
		Tipo:        m.Tipo,
		Codigo:      m.Codigo,
		Descripcion: m.Descripcion,
		Cantidad:    m.Cantidad,
		Ubicacion:   m.Ubicacion,
		Usuario:     m.Usuario,
	}
}
