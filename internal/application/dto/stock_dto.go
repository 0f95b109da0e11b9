package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockRequest alta administrativa de una fila de stock.
// No pasa por el ledger: es el override manual del almacenista.
type CreateStockRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=255"`
	Price     decimal.Decimal `json:"price" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"min=0"`
	CompanyID string          `json:"company_id" validate:"required,uuid"`
}

// UpdateStockRequest edición administrativa de una fila de stock.
type UpdateStockRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=255"`
	Price     decimal.Decimal `json:"price" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"min=0"`
	CompanyID string          `json:"company_id" validate:"required,uuid"`
}

// StockResponse salida de una fila de stock.
type StockResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	CompanyID string          `json:"company_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StockListResponse lista paginada de filas de stock.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
