package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/alvear-textil/deposito-api/internal/domain/entity"
	"github.com/alvear-textil/deposito-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL.
// SaveAll usa una transacción, por lo que requiere el pool (no un Querier).
type StockRepo struct {
	pool *pgxpool.Pool
}

// NewStockRepository construye el adaptador de stock.
func NewStockRepository(pool *pgxpool.Pool) *StockRepo {
	return &StockRepo{pool: pool}
}

const stockColumns = `codigo, tipo, titulo, caracteristica, color, formato, lote, ubicacion, proveedor,
	cantidad, precio_unitario, kilos_por_caja, conos_por_caja, kilos_por_pallet, conos_por_pallet,
	descripcion_cono, fecha_ingreso, ultima_modificacion`

// LoadAll devuelve el snapshot completo del stock, mapa código -> lote.
func (r *StockRepo) LoadAll() (map[string]*entity.Hilo, error) {
	query := `SELECT ` + stockColumns + ` FROM stock`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("load stock: %w", err)
	}
	defer rows.Close()

	stock := make(map[string]*entity.Hilo)
	for rows.Next() {
		h, err := scanHilo(rows)
		if err != nil {
			return nil, err
		}
		stock[h.Codigo] = h
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load stock: %w", err)
	}
	return stock, nil
}

// SaveAll persiste el snapshot completo en una transacción: upsert de los
// códigos presentes y delete de los ausentes.
func (r *StockRepo) SaveAll(stock map[string]*entity.Hilo) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save stock: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	codigos := make([]string, 0, len(stock))
	for codigo, h := range stock {
		codigos = append(codigos, codigo)
		if err := upsertHilo(ctx, tx, h); err != nil {
			return err
		}
	}

	// Elimina lo que ya no está en el snapshot.
	if _, err := tx.Exec(ctx, `DELETE FROM stock WHERE codigo != ALL($1)`, codigos); err != nil {
		return fmt.Errorf("delete stock faltante: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save stock: %w", err)
	}
	return nil
}

func upsertHilo(ctx context.Context, q Querier, h *entity.Hilo) error {
	query := `
		INSERT INTO stock (` + stockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (codigo) DO UPDATE SET
			tipo = EXCLUDED.tipo, titulo = EXCLUDED.titulo,
			caracteristica = EXCLUDED.caracteristica, color = EXCLUDED.color,
			formato = EXCLUDED.formato, lote = EXCLUDED.lote,
			ubicacion = EXCLUDED.ubicacion, proveedor = EXCLUDED.proveedor,
			cantidad = EXCLUDED.cantidad, precio_unitario = EXCLUDED.precio_unitario,
			kilos_por_caja = EXCLUDED.kilos_por_caja, conos_por_caja = EXCLUDED.conos_por_caja,
			kilos_por_pallet = EXCLUDED.kilos_por_pallet, conos_por_pallet = EXCLUDED.conos_por_pallet,
			descripcion_cono = EXCLUDED.descripcion_cono,
			fecha_ingreso = EXCLUDED.fecha_ingreso,
			ultima_modificacion = EXCLUDED.ultima_modificacion`

	var (
		kilosPorCaja, kilosPorPallet *decimal.Decimal
		conosPorCaja, conosPorPallet *int
		descripcionCono              *string
	)
	if h.Cajas != nil {
		kilosPorCaja = &h.Cajas.KilosPorCaja
		conosPorCaja = &h.Cajas.ConosPorCaja
		descripcionCono = &h.Cajas.DescripcionCono
	}
	if h.Pallet != nil {
		kilosPorPallet = &h.Pallet.KilosPorPallet
		conosPorPallet = &h.Pallet.ConosPorPallet
		descripcionCono = &h.Pallet.DescripcionCono
	}

	_, err := q.Exec(ctx, query,
		h.Codigo, h.Tipo, h.Titulo, h.Caracteristica, h.Color, h.Formato,
		h.Lote, h.Ubicacion, h.Proveedor, h.Cantidad, h.PrecioUnitario,
		kilosPorCaja, conosPorCaja, kilosPorPallet, conosPorPallet,
		descripcionCono, h.FechaIngreso, h.UltimaModificacion,
	)
	if err != nil {
		return fmt.Errorf("upsert stock %s: %w", h.Codigo, err)
	}
	return nil
}

// rowScanner cubre pgx.Rows y pgx.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanHilo(row rowScanner) (*entity.Hilo, error) {
	var (
		h                            entity.Hilo
		kilosPorCaja, kilosPorPallet *decimal.Decimal
		conosPorCaja, conosPorPallet *int
		descripcionCono              *string
	)
	err := row.Scan(
		&h.Codigo, &h.Tipo, &h.Titulo, &h.Caracteristica, &h.Color, &h.Formato,
		&h.Lote, &h.Ubicacion, &h.Proveedor, &h.Cantidad, &h.PrecioUnitario,
		&kilosPorCaja, &conosPorCaja, &kilosPorPallet, &conosPorPallet,
		&descripcionCono, &h.FechaIngreso, &h.UltimaModificacion,
	)
	if err != nil {
		return nil, fmt.Errorf("scan stock: %w", err)
	}

	cono := ""
	if descripcionCono != nil {
		cono = *descripcionCono
	}
	switch h.Formato {
	case entity.FormatoPalletizado:
		pallet := entity.EmpaquePallet{DescripcionCono: cono}
		if kilosPorPallet != nil {
			pallet.KilosPorPallet = *kilosPorPallet
		}
		if conosPorPallet != nil {
			pallet.ConosPorPallet = *conosPorPallet
		}
		h.Pallet = &pallet
	default:
		cajas := entity.EmpaqueCajas{DescripcionCono: cono}
		if kilosPorCaja != nil {
			cajas.KilosPorCaja = *kilosPorCaja
		}
		if conosPorCaja != nil {
			cajas.ConosPorCaja = *conosPorCaja
		}
		h.Cajas = &cajas
	}
	return &h, nil
}
