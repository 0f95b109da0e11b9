package reporting

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReportQuery agregación de solo lectura sobre las facturas persistidas:
// sumas de total y cantidad por empresa, opcionalmente acotadas a un rango
// de fechas abierto en ambos extremos (date > from y date < to). No muta
// nada; con las mismas entradas y sin escrituras intermedias el resultado
// es idéntico.
type ReportQuery struct {
	repo repository.ReportRepository
}

// NewReportQuery construye el caso de uso con el puerto de lectura.
func NewReportQuery(repo repository.ReportRepository) *ReportQuery {
	return &ReportQuery{repo: repo}
}

// Aggregate agrupa las facturas del tipo dado por empresa. dateFrom y
// dateTo (YYYY-MM-DD) son opcionales pero van juntos: uno solo es entrada
// inválida. Con ambos presentes, dateFrom debe ser estrictamente anterior a
// dateTo; si no, domain.ErrInvalidDateRange. Orden por nombre de empresa.
func (uc *ReportQuery) Aggregate(ctx context.Context, kind, dateFrom, dateTo string) (*dto.ReportResponse, error) {
	if !entity.ValidInvoiceKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	from, to, err := parseRange(dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.AggregateByCompany(ctx, kind, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.ReportResponse{
		Kind:     kind,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Rows:     toReportRows(rows),
	}, nil
}

// Summary arma el resumen de la página principal: facturas dentro del rango
// y agregados income/outcome por empresa. Ambas fechas son obligatorias.
func (uc *ReportQuery) Summary(ctx context.Context, dateFrom, dateTo string) (*dto.SummaryResponse, error) {
	if dateFrom == "" || dateTo == "" {
		return nil, domain.ErrInvalidInput
	}
	from, to, err := parseRange(dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	invoices, err := uc.repo.ListInvoicesInRange(ctx, *from, *to)
	if err != nil {
		return nil, err
	}
	income, err := uc.repo.AggregateByCompany(ctx, entity.InvoiceKindIncome, from, to)
	if err != nil {
		return nil, err
	}
	outcome, err := uc.repo.AggregateByCompany(ctx, entity.InvoiceKindOutcome, from, to)
	if err != nil {
		return nil, err
	}

	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, inventory.ToInvoiceResponse(inv))
	}
	return &dto.SummaryResponse{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Invoices: items,
		Income:   toReportRows(income),
		Outcome:  toReportRows(outcome),
	}, nil
}

// parseRange interpreta el rango opcional. Devuelve (nil, nil) si no hay
// fechas; domain.ErrInvalidInput si el formato es malo o falta una;
// domain.ErrInvalidDateRange si from >= to.
func parseRange(dateFrom, dateTo string) (*time.Time, *time.Time, error) {
	if dateFrom == "" && dateTo == "" {
		return nil, nil, nil
	}
	if dateFrom == "" || dateTo == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	from, err := time.Parse(dateLayout, dateFrom)
	if err != nil {
		return nil, nil, domain.ErrInvalidInput
	}
	to, err := time.Parse(dateLayout, dateTo)
	if err != nil {
		return nil, nil, domain.ErrInvalidInput
	}
	if !from.Before(to) {
		return nil, nil, domain.ErrInvalidDateRange
	}
	return &from, &to, nil
}

func toReportRows(rows []repository.CompanyAggregate) []dto.ReportRow {
	out := make([]dto.ReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReportRow{
			CompanyName: r.CompanyName,
			TotalSum:    r.TotalSum,
			CountSum:    r.CountSum,
		})
	}
	return out
}
