// Package reporte renderiza el reporte de stock general como PDF (Maroto v2).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Depósito Textil  │  Fecha del reporte              │
//	│  RESUMEN: productos / unidades / críticos                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Título | Color | Cant | Ubicación | Estado   │
//	└─────────────────────────────────────────────────────────────┘
package reporte

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/alvear-textil/deposito-api/internal/application/dto"
	dstock "github.com/alvear-textil/deposito-api/internal/domain/stock"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimario = &props.Color{Red: 26, Green: 54, Blue: 93}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritico  = &props.Color{Red: 185, Green: 28, Blue: 28}
	colorBajo     = &props.Color{Red: 180, Green: 120, Blue: 0}
)

// PDFGenerator renderiza reportes de stock con Maroto v2.
type PDFGenerator struct{}

// NewPDFGenerator construye el generador.
func NewPDFGenerator() *PDFGenerator { return &PDFGenerator{} }

// GenerarStockGeneral genera el PDF del reporte y devuelve sus bytes.
func (g *PDFGenerator) GenerarStockGeneral(rep dto.ReporteStockResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock General", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(resumenRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))

	m.AddRows(tablaHeaderRow())
	for _, fila := range rep.Productos {
		m.AddRows(tablaFilaRow(fila))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha del reporte (der).
func headerRow(rep dto.ReporteStockResponse) core.Row {
	fecha := rep.FechaReporte
	if t, err := time.Parse(time.RFC3339, rep.FechaReporte); err == nil {
		fecha = t.Format("02/01/2006 15:04")
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Depósito Textil — Reporte de Stock General", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(fecha, props.Text{
				Size: 9, Top: 4, Align: align.Right, Color: colorGris,
			}),
		),
	)
}

// resumenRow: totales del reporte.
func resumenRow(rep dto.ReporteStockResponse) core.Row {
	return row.New(8).Add(
		col.New(4).Add(
			text.New(fmt.Sprintf("Productos: %d", rep.TotalProductos), props.Text{Size: 9, Top: 1}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Unidades en stock: %d", rep.TotalCajas), props.Text{Size: 9, Top: 1}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Críticos: %d", rep.ProductosCriticos), props.Text{
				Size: 9, Top: 1, Style: fontstyle.Bold, Color: colorCritico,
			}),
		),
	)
}

func tablaHeaderRow() core.Row {
	estilo := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New("Tipo", estilo)),
		col.New(1).Add(text.New("Título", estilo)),
		col.New(2).Add(text.New("Característica", estilo)),
		col.New(1).Add(text.New("Color", estilo)),
		col.New(1).Add(text.New("Cant.", estilo)),
		col.New(2).Add(text.New("Ubicación", estilo)),
		col.New(1).Add(text.New("Días", estilo)),
		col.New(2).Add(text.New("Estado", estilo)),
	)
}

func tablaFilaRow(fila dto.FilaReporte) core.Row {
	celda := props.Text{Size: 8, Top: 1}
	estadoProps := props.Text{Size: 8, Top: 1}
	switch fila.Estado {
	case dstock.EstadoCritico:
		estadoProps.Color = colorCritico
		estadoProps.Style = fontstyle.Bold
	case dstock.EstadoBajo:
		estadoProps.Color = colorBajo
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(fila.Tipo, celda)),
		col.New(1).Add(text.New(fila.Titulo, celda)),
		col.New(2).Add(text.New(fila.Caracteristica, celda)),
		col.New(1).Add(text.New(fila.Color, celda)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", fila.Cantidad), celda)),
		col.New(2).Add(text.New(fila.Ubicacion, celda)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", fila.DiasStock), celda)),
		col.New(2).Add(text.New(fila.Estado, estadoProps)),
	)
}
