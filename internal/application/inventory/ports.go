package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el ajuste de stock y la
// escritura de la factura sean atómicos: si el ledger falla, la factura
// no se persiste.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}
