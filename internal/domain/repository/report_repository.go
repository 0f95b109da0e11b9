package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// CompanyAggregate una fila del reporte: sumas de total y cantidad de las
// facturas de un tipo, agrupadas por empresa.
type CompanyAggregate struct {
	CompanyName string
	TotalSum    decimal.Decimal
	CountSum    int64
}

// ReportRepository consultas de solo lectura para el reporte por rango de
// fechas. Sin mutaciones; re-ejecutable con resultado idéntico si no hay
// escrituras intermedias.
type ReportRepository interface {
	// AggregateByCompany agrupa facturas del tipo dado por empresa. Si from y
	// to no son nil, filtra por date estrictamente dentro de (from, to).
	AggregateByCompany(ctx context.Context, kind string, from, to *time.Time) ([]CompanyAggregate, error)
	// ListInvoicesInRange devuelve las facturas con date estrictamente dentro
	// de (from, to), de cualquier tipo.
	ListInvoicesInRange(ctx context.Context, from, to time.Time) ([]*entity.Invoice, error)
}
