package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/reporting"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// fakeReportRepo devuelve datos precargados y registra los rangos con los
// que fue consultado.
type fakeReportRepo struct {
	aggregates map[string][]repository.CompanyAggregate // por kind
	invoices   []*entity.Invoice

	lastFrom, lastTo *time.Time
}

func (r *fakeReportRepo) AggregateByCompany(ctx context.Context, kind string, from, to *time.Time) ([]repository.CompanyAggregate, error) {
	r.lastFrom, r.lastTo = from, to
	return r.aggregates[kind], nil
}

func (r *fakeReportRepo) ListInvoicesInRange(ctx context.Context, from, to time.Time) ([]*entity.Invoice, error) {
	return r.invoices, nil
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{
		aggregates: map[string][]repository.CompanyAggregate{
			entity.InvoiceKindIncome: {
				{CompanyName: "ACME", TotalSum: decimal.RequireFromString("300.00"), CountSum: 12},
				{CompanyName: "Umbrella", TotalSum: decimal.RequireFromString("80.00"), CountSum: 4},
			},
			entity.InvoiceKindOutcome: {
				{CompanyName: "ACME", TotalSum: decimal.RequireFromString("120.00"), CountSum: 6},
			},
		},
		invoices: []*entity.Invoice{
			{ID: "inv-1", Kind: entity.InvoiceKindIncome, Product: "tornillos", Quantity: 12, Total: decimal.RequireFromString("300.00")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Aggregate
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_SinRangoDevuelveTodo(t *testing.T) {
	repo := newFakeReportRepo()
	uc := reporting.NewReportQuery(repo)

	out, err := uc.Aggregate(context.Background(), entity.InvoiceKindIncome, "", "")
	require.NoError(t, err)

	require.Len(t, out.Rows, 2)
	assert.Equal(t, "ACME", out.Rows[0].CompanyName)
	assert.Equal(t, int64(12), out.Rows[0].CountSum)
	assert.Nil(t, repo.lastFrom, "sin fechas no debe filtrarse por rango")
	assert.Nil(t, repo.lastTo)
}

func TestAggregate_ConRangoPasaLasFechas(t *testing.T) {
	repo := newFakeReportRepo()
	uc := reporting.NewReportQuery(repo)

	out, err := uc.Aggregate(context.Background(), entity.InvoiceKindOutcome, "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	require.Len(t, out.Rows, 1)
	assert.Equal(t, "2024-01-01", out.DateFrom)
	assert.Equal(t, "2024-12-31", out.DateTo)
	require.NotNil(t, repo.lastFrom)
	require.NotNil(t, repo.lastTo)
	assert.Equal(t, 2024, repo.lastFrom.Year())
	assert.Equal(t, time.December, repo.lastTo.Month())
}

func TestAggregate_TipoInvalido(t *testing.T) {
	uc := reporting.NewReportQuery(newFakeReportRepo())

	_, err := uc.Aggregate(context.Background(), "transfer", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Repetir la consulta sin escrituras intermedias produce el mismo resultado.
func TestAggregate_EsRepetible(t *testing.T) {
	uc := reporting.NewReportQuery(newFakeReportRepo())

	first, err := uc.Aggregate(context.Background(), entity.InvoiceKindIncome, "2024-01-01", "2024-06-30")
	require.NoError(t, err)
	second, err := uc.Aggregate(context.Background(), entity.InvoiceKindIncome, "2024-01-01", "2024-06-30")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación del rango
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_ValidacionDeRango(t *testing.T) {
	uc := reporting.NewReportQuery(newFakeReportRepo())

	cases := []struct {
		name     string
		from, to string
		want     error
	}{
		{"solo from", "2024-01-01", "", domain.ErrInvalidInput},
		{"solo to", "", "2024-12-31", domain.ErrInvalidInput},
		{"formato malo en from", "01/01/2024", "2024-12-31", domain.ErrInvalidInput},
		{"formato malo en to", "2024-01-01", "31-12-2024", domain.ErrInvalidInput},
		{"from igual a to", "2024-06-15", "2024-06-15", domain.ErrInvalidDateRange},
		{"from posterior a to", "2024-12-31", "2024-01-01", domain.ErrInvalidDateRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Aggregate(context.Background(), entity.InvoiceKindIncome, tc.from, tc.to)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_CombinaFacturasYAgregados(t *testing.T) {
	repo := newFakeReportRepo()
	uc := reporting.NewReportQuery(repo)

	out, err := uc.Summary(context.Background(), "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	require.Len(t, out.Invoices, 1)
	assert.Equal(t, "inv-1", out.Invoices[0].ID)
	require.Len(t, out.Income, 2)
	require.Len(t, out.Outcome, 1)
	assert.True(t, out.Outcome[0].TotalSum.Equal(decimal.RequireFromString("120.00")))
}

// En Summary las dos fechas son obligatorias, a diferencia de Aggregate.
func TestSummary_FechasObligatorias(t *testing.T) {
	uc := reporting.NewReportQuery(newFakeReportRepo())

	_, err := uc.Summary(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Summary(context.Background(), "2024-01-01", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummary_RangoInvertido(t *testing.T) {
	uc := reporting.NewReportQuery(newFakeReportRepo())

	_, err := uc.Summary(context.Background(), "2024-12-31", "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}
