package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de factura. Enumeración cerrada: la tabla invoice_kinds se siembra
// con exactamente estos dos valores al arrancar.
const (
	InvoiceKindIncome  = "income"  // entrada: suma cantidad y valor al stock
	InvoiceKindOutcome = "outcome" // salida: resta cantidad y valor del stock
)

// ValidInvoiceKind informa si el tipo pertenece a la enumeración.
func ValidInvoiceKind(kind string) bool {
	return kind == InvoiceKindIncome || kind == InvoiceKindOutcome
}

// Invoice representa una factura de entrada o salida de mercancía.
// Product es texto libre, NO una referencia a ProductStock: el cruce se hace
// por igualdad de nombre dentro de la empresa (riesgo documentado).
type Invoice struct {
	ID        string
	Kind      string // InvoiceKindIncome | InvoiceKindOutcome
	Product   string
	Date      time.Time
	Quantity  int64
	Total     decimal.Decimal // NUMERIC(10,2)
	CompanyID string
	CreatedAt time.Time
}
