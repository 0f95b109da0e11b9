package entity

import "time"

// Company representa una empresa contraparte del almacén: dueña de filas de
// stock y de las facturas registradas contra ella. El nombre es único.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
