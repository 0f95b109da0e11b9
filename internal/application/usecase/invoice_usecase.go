package usecase

import (
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// InvoiceUseCase lecturas sobre facturas persistidas (listados y detalle).
// El alta va por inventory.InvoiceRecorder.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// GetByID obtiene una factura por ID.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	out := inventory.ToInvoiceResponse(invoice)
	return &out, nil
}

// List lista facturas, opcionalmente filtradas por tipo (income/outcome).
func (uc *InvoiceUseCase) List(kind string, limit, offset int) (*dto.InvoiceListResponse, error) {
	var (
		list []*entity.Invoice
		err  error
	)
	if kind != "" {
		if !entity.ValidInvoiceKind(kind) {
			return nil, domain.ErrInvalidInput
		}
		list, err = uc.repo.ListByKind(kind, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, inventory.ToInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
