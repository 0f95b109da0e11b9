package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordInvoiceRequest entrada para registrar una factura (income u outcome).
// Date en formato YYYY-MM-DD; si viene vacío se usa la fecha actual.
type RecordInvoiceRequest struct {
	Kind      string          `json:"kind" validate:"required,oneof=income outcome"`
	Product   string          `json:"product" validate:"required,min=1,max=255"`
	Date      string          `json:"date"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	Total     decimal.Decimal `json:"total" validate:"required"`
	CompanyID string          `json:"company_id" validate:"required,uuid"`
}

// RecordInvoiceResponse salida del registro: la factura persistida y el
// estado del stock tras aplicar el ajuste.
type RecordInvoiceResponse struct {
	Invoice InvoiceResponse `json:"invoice"`
	Stock   StockResponse   `json:"stock"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Product   string          `json:"product"`
	Date      time.Time       `json:"date"`
	Quantity  int64           `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
	CompanyID string          `json:"company_id"`
	CreatedAt time.Time       `json:"created_at"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
