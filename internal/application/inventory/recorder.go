package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// DateLayout formato de fecha aceptado en RecordInvoiceRequest.Date.
const DateLayout = "2006-01-02"

// InvoiceRecorder valida una factura entrante, delega el ajuste de stock al
// StockLedger y persiste la factura, todo dentro de una sola transacción.
// Si el ledger falla no queda rastro de la factura.
type InvoiceRecorder struct {
	txRunner    TxRunner
	ledger      *StockLedger
	companyRepo repository.CompanyRepository
}

// NewInvoiceRecorder construye el caso de uso.
func NewInvoiceRecorder(txRunner TxRunner, ledger *StockLedger, companyRepo repository.CompanyRepository) *InvoiceRecorder {
	return &InvoiceRecorder{txRunner: txRunner, ledger: ledger, companyRepo: companyRepo}
}

// Record registra la factura. Devuelve la factura persistida y el estado del
// stock resultante.
func (uc *InvoiceRecorder) Record(ctx context.Context, in dto.RecordInvoiceRequest) (*dto.RecordInvoiceResponse, error) {
	if !entity.ValidInvoiceKind(in.Kind) || in.Product == "" || in.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.Total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse(DateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	// La empresa debe existir antes de tocar stock (lectura fuera de la tx).
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		Product:   in.Product,
		Date:      date,
		Quantity:  in.Quantity,
		Total:     in.Total,
		CompanyID: in.CompanyID,
		CreatedAt: now,
	}
	var stock *entity.ProductStock

	// Ajuste de stock + INSERT de la factura en una sola transacción;
	// cualquier error hace rollback de ambos.
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		stock, err = uc.ledger.Apply(stockRepo, ApplyInput{
			Kind:      in.Kind,
			CompanyID: in.CompanyID,
			Product:   in.Product,
			Quantity:  in.Quantity,
			Total:     in.Total,
		}, now)
		if err != nil {
			return err
		}
		return invoiceRepo.Create(invoice)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RecordInvoiceResponse{
		Invoice: ToInvoiceResponse(invoice),
		Stock:   ToStockResponse(stock),
	}, nil
}

// ToInvoiceResponse mapea la entidad al DTO de salida.
func ToInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:        inv.ID,
		Kind:      inv.Kind,
		Product:   inv.Product,
		Date:      inv.Date,
		Quantity:  inv.Quantity,
		Total:     inv.Total,
		CompanyID: inv.CompanyID,
		CreatedAt: inv.CreatedAt,
	}
}

// ToStockResponse mapea la entidad al DTO de salida.
func ToStockResponse(s *entity.ProductStock) dto.StockResponse {
	return dto.StockResponse{
		ID:        s.ID,
		Name:      s.Name,
		Price:     s.Price,
		Quantity:  s.Quantity,
		CompanyID: s.CompanyID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
