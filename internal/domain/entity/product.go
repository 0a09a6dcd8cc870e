package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// SupplierID es opcional: un producto puede existir sin proveedor asignado.
type Product struct {
	ID         int64
	Name       string
	SKU        string // código único de negocio
	Price      decimal.Decimal
	SupplierID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
