package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// StockLedger aplica el ajuste de stock de una factura sobre la fila
// agregada (producto, empresa). Trabaja sobre repositorios atados a la
// transacción del caller: la lectura bloquea la fila (SELECT FOR UPDATE)
// para que la secuencia leer-verificar-escribir sea atómica y dos salidas
// concurrentes no puedan sobregirar el stock.
type StockLedger struct{}

// NewStockLedger construye el ledger. No tiene estado propio.
func NewStockLedger() *StockLedger {
	return &StockLedger{}
}

// ApplyInput parámetros de un ajuste de stock.
type ApplyInput struct {
	Kind      string // entity.InvoiceKindIncome | entity.InvoiceKindOutcome
	CompanyID string
	Product   string
	Quantity  int64
	Total     decimal.Decimal
}

// Apply aplica el ajuste y devuelve la fila de stock resultante.
//
// income: si la fila existe, suma quantity y total; si no, la crea
// perezosamente (primera entrada del par producto/empresa). Siempre
// exitoso una vez validada la entrada.
//
// outcome: sin fila → domain.ErrNotFound; cantidad disponible menor a la
// solicitada → domain.ErrInsufficientStock sin mutación alguna (no hay
// despacho parcial). Si alcanza, resta quantity y total. El valor (price)
// puede quedar negativo si total excede el acumulado: comportamiento
// heredado, se conserva sin validar.
//
// Toca exactamente una fila de stock por llamada.
func (l *StockLedger) Apply(stockRepo repository.StockRepository, in ApplyInput, now time.Time) (*entity.ProductStock, error) {
	if !entity.ValidInvoiceKind(in.Kind) || in.Product == "" || in.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.Total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	stock, err := stockRepo.GetByNameForUpdate(in.CompanyID, in.Product)
	if err != nil {
		return nil, err
	}

	switch in.Kind {
	case entity.InvoiceKindIncome:
		if stock == nil {
			stock = &entity.ProductStock{
				ID:        uuid.New().String(),
				Name:      in.Product,
				Price:     in.Total,
				Quantity:  in.Quantity,
				CompanyID: in.CompanyID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := stockRepo.Create(stock); err != nil {
				return nil, err
			}
			return stock, nil
		}
		stock.Quantity += in.Quantity
		stock.Price = stock.Price.Add(in.Total)

	case entity.InvoiceKindOutcome:
		if stock == nil {
			return nil, domain.ErrNotFound
		}
		if stock.Quantity < in.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		stock.Quantity -= in.Quantity
		stock.Price = stock.Price.Sub(in.Total)
	}

	stock.UpdatedAt = now
	if err := stockRepo.Update(stock); err != nil {
		return nil, err
	}
	return stock, nil
}
