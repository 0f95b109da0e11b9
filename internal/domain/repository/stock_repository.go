package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar el stock
// agregado por (nombre de producto, empresa). El ledger lo usa dentro de
// transacciones para garantizar consistencia; los handlers administrativos
// lo usan directamente (override que no pasa por el ledger).
type StockRepository interface {
	GetByID(id string) (*entity.ProductStock, error)
	// GetByName devuelve la primera fila que casa por nombre dentro de la
	// empresa, o nil si no existe.
	GetByName(companyID, name string) (*entity.ProductStock, error)
	// GetByNameForUpdate igual que GetByName pero bloquea la fila
	// (SELECT FOR UPDATE). Solo tiene sentido dentro de una transacción.
	GetByNameForUpdate(companyID, name string) (*entity.ProductStock, error)
	Create(stock *entity.ProductStock) error
	Update(stock *entity.ProductStock) error
	List(limit, offset int) ([]*entity.ProductStock, error)
	ListByCompany(companyID string) ([]*entity.ProductStock, error)
	Delete(id string) error
}
