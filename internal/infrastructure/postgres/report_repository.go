package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el reporte por rango de fechas.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// AggregateByCompany suma total y cantidad de las facturas del tipo dado,
// agrupadas por empresa. El rango, si viene, es estrictamente abierto en
// ambos extremos (date > from AND date < to). JOIN a invoice_kinds valida
// el tipo contra la enumeración sembrada. Orden por nombre de empresa para
// un resultado determinista.
func (r *ReportRepo) AggregateByCompany(ctx context.Context, kind string, from, to *time.Time) ([]repository.CompanyAggregate, error) {
	query := `
	SELECT
	    c.name                AS company_name,
	    SUM(i.total)          AS total_sum,
	    SUM(i.quantity)       AS count_sum
	FROM invoices i
	JOIN companies     c ON c.id   = i.company_id
	JOIN invoice_kinds k ON k.name = i.kind
	WHERE k.name = $1`
	args := []any{kind}
	if from != nil && to != nil {
		query += ` AND i.date > $2 AND i.date < $3`
		args = append(args, *from, *to)
	}
	query += `
	GROUP BY c.name
	ORDER BY c.name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.AggregateByCompany: %w", err)
	}
	defer rows.Close()

	var results []repository.CompanyAggregate
	for rows.Next() {
		var row repository.CompanyAggregate
		if err := rows.Scan(&row.CompanyName, &row.TotalSum, &row.CountSum); err != nil {
			return nil, fmt.Errorf("report.AggregateByCompany scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListInvoicesInRange devuelve las facturas con date estrictamente dentro de (from, to).
func (r *ReportRepo) ListInvoicesInRange(ctx context.Context, from, to time.Time) ([]*entity.Invoice, error) {
	const query = `
	SELECT id, kind, product, date, quantity, total, company_id, created_at
	FROM invoices
	WHERE date > $1 AND date < $2
	ORDER BY date, created_at`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.ListInvoicesInRange: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.Kind, &inv.Product, &inv.Date, &inv.Quantity, &inv.Total, &inv.CompanyID, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("report.ListInvoicesInRange scan: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
