package entity

import "time"

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
