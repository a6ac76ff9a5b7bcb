package postgres

import (
	"context"
	"fmt"
)

// sentencias DDL idempotentes; se ejecutan al arrancar con driver postgres.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stock (
		codigo              TEXT PRIMARY KEY,
		tipo                TEXT NOT NULL,
		titulo              TEXT NOT NULL,
		caracteristica      TEXT NOT NULL DEFAULT '',
		color               TEXT NOT NULL DEFAULT '',
		formato             TEXT NOT NULL,
		lote                TEXT NOT NULL DEFAULT '',
		ubicacion           TEXT NOT NULL DEFAULT '',
		proveedor           TEXT NOT NULL DEFAULT '',
		cantidad            INTEGER NOT NULL DEFAULT 0,
		precio_unitario     NUMERIC(12,2) NOT NULL DEFAULT 0,
		kilos_por_caja      NUMERIC(10,2),
		conos_por_caja      INTEGER,
		kilos_por_pallet    NUMERIC(10,2),
		conos_por_pallet    INTEGER,
		descripcion_cono    TEXT,
		fecha_ingreso       TIMESTAMPTZ NOT NULL DEFAULT now(),
		ultima_modificacion TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS movimientos (
		id          UUID PRIMARY KEY,
		fecha       TIMESTAMPTZ NOT NULL,
		tipo        TEXT NOT NULL,
		codigo      TEXT NOT NULL DEFAULT '',
		descripcion TEXT NOT NULL DEFAULT '',
		cantidad    INTEGER NOT NULL DEFAULT 0,
		ubicacion   TEXT NOT NULL DEFAULT '',
		usuario     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS movimientos_fecha_idx ON movimientos (fecha DESC)`,
	`CREATE TABLE IF NOT EXISTS configuracion (
		clave TEXT PRIMARY KEY,
		valor JSONB NOT NULL
	)`,
}

// EnsureSchema crea las tablas necesarias si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
