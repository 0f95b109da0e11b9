package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, name, price, quantity, company_id, created_at, updated_at`

// GetByID obtiene una fila de stock por ID, o nil si no existe.
func (r *StockRepo) GetByID(id string) (*entity.ProductStock, error) {
	query := `SELECT ` + stockColumns + ` FROM product_stock WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByName devuelve la primera fila que casa por nombre dentro de la
// empresa, o nil. Sin constraint único, ORDER BY created_at fija cuál es
// "la primera" de forma determinista.
func (r *StockRepo) GetByName(companyID, name string) (*entity.ProductStock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM product_stock WHERE company_id = $1 AND name = $2
		ORDER BY created_at LIMIT 1`
	return r.scanOne(query, companyID, name)
}

// GetByNameForUpdate igual que GetByName pero bloquea la fila
// (SELECT FOR UPDATE) dentro de la transacción en curso.
func (r *StockRepo) GetByNameForUpdate(companyID, name string) (*entity.ProductStock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM product_stock WHERE company_id = $1 AND name = $2
		ORDER BY created_at LIMIT 1
		FOR UPDATE`
	return r.scanOne(query, companyID, name)
}

// Create inserta una nueva fila de stock.
func (r *StockRepo) Create(stock *entity.ProductStock) error {
	query := `
		INSERT INTO product_stock (id, name, price, quantity, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.Name, stock.Price, stock.Quantity, stock.CompanyID,
		stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// Update actualiza una fila de stock existente por ID.
func (r *StockRepo) Update(stock *entity.ProductStock) error {
	query := `
		UPDATE product_stock
		SET name = $2, price = $3, quantity = $4, company_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.Name, stock.Price, stock.Quantity, stock.CompanyID,
		stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List devuelve filas de stock con paginación, ordenadas por empresa y nombre.
func (r *StockRepo) List(limit, offset int) ([]*entity.ProductStock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM product_stock ORDER BY company_id, name LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// ListByCompany devuelve todas las filas de stock de una empresa.
func (r *StockRepo) ListByCompany(companyID string) ([]*entity.ProductStock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM product_stock WHERE company_id = $1 ORDER BY name`
	return r.scanMany(query, companyID)
}

// Delete elimina una fila de stock por ID.
func (r *StockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_stock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

func (r *StockRepo) scanOne(query string, args ...any) (*entity.ProductStock, error) {
	var s entity.ProductStock
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.Name, &s.Price, &s.Quantity, &s.CompanyID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

func (r *StockRepo) scanMany(query string, args ...any) ([]*entity.ProductStock, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductStock
	for rows.Next() {
		var s entity.ProductStock
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Quantity, &s.CompanyID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
