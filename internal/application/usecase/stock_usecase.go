package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// StockUseCase CRUD administrativo sobre filas de stock. Escribe directo en
// product_stock sin pasar por el ledger: es el override manual y no genera
// facturas (desacople del historial heredado del sistema original).
type StockUseCase struct {
	repo        repository.StockRepository
	companyRepo repository.CompanyRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository, companyRepo repository.CompanyRepository) *StockUseCase {
	return &StockUseCase{repo: repo, companyRepo: companyRepo}
}

// Create alta manual de una fila de stock. La empresa debe existir.
func (uc *StockUseCase) Create(in dto.CreateStockRequest) (*dto.StockResponse, error) {
	if in.Name == "" || in.CompanyID == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	stock := &entity.ProductStock{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     in.Price,
		Quantity:  in.Quantity,
		CompanyID: in.CompanyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(stock); err != nil {
		return nil, err
	}
	out := inventory.ToStockResponse(stock)
	return &out, nil
}

// GetByID obtiene una fila de stock por ID.
func (uc *StockUseCase) GetByID(id string) (*dto.StockResponse, error) {
	stock, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, nil
	}
	out := inventory.ToStockResponse(stock)
	return &out, nil
}

// Update edición manual de una fila de stock (nombre, precio, cantidad, empresa).
func (uc *StockUseCase) Update(id string, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	if in.Name == "" || in.CompanyID == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	stock, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	if stock.CompanyID != in.CompanyID {
		company, err := uc.companyRepo.GetByID(in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound
		}
	}
	stock.Name = in.Name
	stock.Price = in.Price
	stock.Quantity = in.Quantity
	stock.CompanyID = in.CompanyID
	stock.UpdatedAt = time.Now()
	if err := uc.repo.Update(stock); err != nil {
		return nil, err
	}
	out := inventory.ToStockResponse(stock)
	return &out, nil
}

// Delete borra la fila de stock. Las facturas que la produjeron no se tocan
// (inconsistencia posible con el historial, conservada a propósito).
func (uc *StockUseCase) Delete(id string) error {
	stock, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if stock == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista filas de stock con paginación.
func (uc *StockUseCase) List(limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, inventory.ToStockResponse(s))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
