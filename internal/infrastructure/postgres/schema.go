package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen y siembra invoice_kinds con la
// enumeración cerrada income/outcome. Idempotente: seguro en cada arranque.
//
// product_stock NO tiene constraint único sobre (company_id, name): la
// unicidad del par la asume la lógica de negocio, igual que en el esquema
// original. El índice de abajo solo acelera la búsqueda del ledger.
//
// invoices.company_id no lleva FK: el historial de facturas sobrevive al
// borrado de la empresa (riesgo de consistencia documentado y heredado).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS companies (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS product_stock (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		price      NUMERIC(10,2) NOT NULL DEFAULT 0,
		quantity   BIGINT NOT NULL DEFAULT 0,
		company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_product_stock_company_name
		ON product_stock (company_id, name);

	CREATE TABLE IF NOT EXISTS invoice_kinds (
		name TEXT PRIMARY KEY
	);

	CREATE TABLE IF NOT EXISTS invoices (
		id         UUID PRIMARY KEY,
		kind       TEXT NOT NULL REFERENCES invoice_kinds(name),
		product    TEXT NOT NULL,
		date       TIMESTAMPTZ NOT NULL,
		quantity   BIGINT NOT NULL,
		total      NUMERIC(10,2) NOT NULL,
		company_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_invoices_kind_date ON invoices (kind, date);
	CREATE INDEX IF NOT EXISTS idx_invoices_company   ON invoices (company_id);

	CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL,
		role          TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'active',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	);`

	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}

	const seed = `
	INSERT INTO invoice_kinds (name) VALUES ('income'), ('outcome')
	ON CONFLICT (name) DO NOTHING;`
	if _, err := pool.Exec(ctx, seed); err != nil {
		return fmt.Errorf("sembrar invoice_kinds: %w", err)
	}
	return nil
}
