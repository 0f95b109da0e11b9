package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/almacen-api/internal/interfaces/http"
)

const testCompanyID = "00000000-0000-0000-0000-000000000010"

// Fakes mínimos para montar un InvoiceRecorder real detrás del handler.

type memStockRepo struct {
	rows map[string]*entity.ProductStock // companyID + "/" + name
}

func (r *memStockRepo) key(companyID, name string) string { return companyID + "/" + name }

func (r *memStockRepo) GetByID(id string) (*entity.ProductStock, error) { return nil, nil }
func (r *memStockRepo) GetByName(companyID, name string) (*entity.ProductStock, error) {
	return r.rows[r.key(companyID, name)], nil
}
func (r *memStockRepo) GetByNameForUpdate(companyID, name string) (*entity.ProductStock, error) {
	return r.GetByName(companyID, name)
}
func (r *memStockRepo) Create(s *entity.ProductStock) error {
	r.rows[r.key(s.CompanyID, s.Name)] = s
	return nil
}
func (r *memStockRepo) Update(s *entity.ProductStock) error {
	r.rows[r.key(s.CompanyID, s.Name)] = s
	return nil
}
func (r *memStockRepo) List(limit, offset int) ([]*entity.ProductStock, error)     { return nil, nil }
func (r *memStockRepo) ListByCompany(companyID string) ([]*entity.ProductStock, error) {
	return nil, nil
}
func (r *memStockRepo) Delete(id string) error { return nil }

type memInvoiceRepo struct {
	invoices []*entity.Invoice
}

func (r *memInvoiceRepo) Create(inv *entity.Invoice) error {
	r.invoices = append(r.invoices, inv)
	return nil
}
func (r *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}
func (r *memInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	return r.invoices, nil
}
func (r *memInvoiceRepo) ListByKind(kind string, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.Kind == kind {
			out = append(out, inv)
		}
	}
	return out, nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *memCompanyRepo) Create(c *entity.Company) error { return nil }
func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *memCompanyRepo) GetByName(name string) (*entity.Company, error) { return nil, nil }
func (r *memCompanyRepo) Update(c *entity.Company) error                 { return nil }
func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return nil, nil
}
func (r *memCompanyRepo) Delete(id string) error { return nil }

type memTxRunner struct {
	stock    *memStockRepo
	invoices *memInvoiceRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	snap := make([]*entity.Invoice, len(r.invoices.invoices))
	copy(snap, r.invoices.invoices)
	if err := fn(r.stock, r.invoices); err != nil {
		r.invoices.invoices = snap
		return err
	}
	return nil
}

func buildInvoiceApp(t *testing.T) (*fiber.App, *memStockRepo, *memInvoiceRepo) {
	t.Helper()
	stock := &memStockRepo{rows: make(map[string]*entity.ProductStock)}
	invoices := &memInvoiceRepo{}
	companies := &memCompanyRepo{companies: map[string]*entity.Company{
		testCompanyID: {ID: testCompanyID, Name: "ACME"},
	}}
	recorder := inventory.NewInvoiceRecorder(
		&memTxRunner{stock: stock, invoices: invoices},
		inventory.NewStockLedger(),
		companies,
	)
	handler := apphttp.NewInvoiceHandler(recorder, usecase.NewInvoiceUseCase(invoices))

	app := fiber.New()
	app.Post("/api/invoices", handler.Create)
	app.Get("/api/invoices", handler.List)
	app.Get("/api/invoices/:id", handler.GetByID)
	return app, stock, invoices
}

func postInvoice(t *testing.T, app *fiber.App, payload map[string]any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestInvoiceCreate_Income_Retorna201(t *testing.T) {
	app, stock, invoices := buildInvoiceApp(t)

	resp := postInvoice(t, app, map[string]any{
		"kind":       entity.InvoiceKindIncome,
		"product":    "tornillos",
		"date":       "2024-05-20",
		"quantity":   10,
		"total":      "150.00",
		"company_id": testCompanyID,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, invoices.invoices, 1)

	row := stock.rows[testCompanyID+"/tornillos"]
	require.NotNil(t, row, "el income debe crear la fila de stock")
	assert.Equal(t, int64(10), row.Quantity)
	assert.True(t, row.Price.Equal(decimal.RequireFromString("150.00")))
}

func TestInvoiceCreate_OutcomeSinStock_Retorna404(t *testing.T) {
	app, _, invoices := buildInvoiceApp(t)

	resp := postInvoice(t, app, map[string]any{
		"kind":       entity.InvoiceKindOutcome,
		"product":    "tornillos",
		"quantity":   5,
		"total":      "100.00",
		"company_id": testCompanyID,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, invoices.invoices, "el fallo no debe dejar factura")
}

func TestInvoiceCreate_StockInsuficiente_Retorna422(t *testing.T) {
	app, stock, invoices := buildInvoiceApp(t)
	stock.rows[testCompanyID+"/tornillos"] = &entity.ProductStock{
		ID: "s1", Name: "tornillos", Quantity: 3,
		Price: decimal.RequireFromString("60.00"), CompanyID: testCompanyID,
	}

	resp := postInvoice(t, app, map[string]any{
		"kind":       entity.InvoiceKindOutcome,
		"product":    "tornillos",
		"quantity":   5,
		"total":      "100.00",
		"company_id": testCompanyID,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, int64(3), stock.rows[testCompanyID+"/tornillos"].Quantity,
		"sin despacho parcial: la cantidad no cambia")
	assert.Empty(t, invoices.invoices)
}

func TestInvoiceCreate_EntradaInvalida_Retorna400(t *testing.T) {
	app, _, _ := buildInvoiceApp(t)

	resp := postInvoice(t, app, map[string]any{
		"kind":       "transfer",
		"product":    "tornillos",
		"quantity":   1,
		"total":      "10.00",
		"company_id": testCompanyID,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInvoiceCreate_EmpresaInexistente_Retorna404(t *testing.T) {
	app, _, _ := buildInvoiceApp(t)

	resp := postInvoice(t, app, map[string]any{
		"kind":       entity.InvoiceKindIncome,
		"product":    "tornillos",
		"quantity":   1,
		"total":      "10.00",
		"company_id": "99999999-9999-9999-9999-999999999999",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvoiceList_FiltraPorKind(t *testing.T) {
	app, _, _ := buildInvoiceApp(t)

	for _, kind := range []string{entity.InvoiceKindIncome, entity.InvoiceKindIncome, entity.InvoiceKindOutcome} {
		payload := map[string]any{
			"kind":       kind,
			"product":    "tornillos",
			"quantity":   1,
			"total":      "10.00",
			"company_id": testCompanyID,
		}
		resp := postInvoice(t, app, payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	req := httptest.NewRequest(http.MethodGet, "/api/invoices?kind=outcome", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Items []struct {
			Kind string `json:"kind"`
		} `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, entity.InvoiceKindOutcome, body.Items[0].Kind)
}

func TestInvoiceList_KindDesconocido_Retorna400(t *testing.T) {
	app, _, _ := buildInvoiceApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices?kind=transfer", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInvoiceGetByID_NoExiste_Retorna404(t *testing.T) {
	app, _, _ := buildInvoiceApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/no-such-id", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
