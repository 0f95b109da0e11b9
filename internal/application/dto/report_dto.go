package dto

import "github.com/shopspring/decimal"

// ReportRow una fila del reporte agregado: sumas por empresa.
type ReportRow struct {
	CompanyName string          `json:"company_name"`
	TotalSum    decimal.Decimal `json:"total_sum"`
	CountSum    int64           `json:"count_sum"`
}

// ReportResponse reporte agregado de un tipo de factura.
type ReportResponse struct {
	Kind     string      `json:"kind"`
	DateFrom string      `json:"date_from,omitempty"`
	DateTo   string      `json:"date_to,omitempty"`
	Rows     []ReportRow `json:"rows"`
}

// SummaryResponse resumen del rango de fechas: facturas dentro del rango y
// agregados de ambos tipos por empresa (equivalente a la página principal).
type SummaryResponse struct {
	DateFrom string            `json:"date_from"`
	DateTo   string            `json:"date_to"`
	Invoices []InvoiceResponse `json:"invoices"`
	Income   []ReportRow       `json:"income_by_company"`
	Outcome  []ReportRow       `json:"outcome_by_company"`
}
