package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStock es el agregado de stock por (nombre de producto, empresa):
// cantidad disponible y valor acumulado (price) derivados del historial de
// facturas. Se crea perezosamente con la primera factura income del par.
//
// No existe constraint único sobre (name, company_id); la unicidad la asume
// la lógica de negocio (brecha de calidad de datos conocida y conservada).
type ProductStock struct {
	ID        string
	Name      string
	Price     decimal.Decimal // valor acumulado, NUMERIC(10,2); puede quedar negativo tras un outcome
	Quantity  int64
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
