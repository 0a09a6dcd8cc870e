package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto con su inventario inicial.
// warehouse_id e initial_quantity son obligatorios: todo producto nace con una posición
// de inventario en una bodega (comportamiento del alta de catálogo).
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=100"`
	SKU               string          `json:"sku" validate:"required,min=1,max=50"`
	Price             decimal.Decimal `json:"price"`
	SupplierID        *int64          `json:"supplier_id,omitempty"`
	WarehouseID       int64           `json:"warehouse_id"`
	InitialQuantity   int64           `json:"initial_quantity"`
	LowStockThreshold *int64          `json:"low_stock_threshold,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Price      decimal.Decimal `json:"price"`
	SupplierID *int64          `json:"supplier_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
