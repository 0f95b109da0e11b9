package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// UpdateCompanyRequest entrada para editar una empresa.
type UpdateCompanyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyDetailResponse empresa con sus filas de stock (página de detalle).
type CompanyDetailResponse struct {
	CompanyResponse
	Products []StockResponse `json:"products"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
