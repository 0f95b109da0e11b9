package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para facturas.
// Las facturas son inmutables una vez registradas: no hay Update ni Delete.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List(limit, offset int) ([]*entity.Invoice, error)
	ListByKind(kind string, limit, offset int) ([]*entity.Invoice, error)
}
