package entity

import "time"

// DefaultLowStockThreshold umbral de stock bajo cuando no se indica uno al crear la posición.
const DefaultLowStockThreshold int64 = 10

// Inventory representa la posición de inventario de un producto en una bodega.
// Quantity es entera y en estado estable es >= 0, pero los lectores no deben asumirlo.
type Inventory struct {
	ID                int64
	ProductID         int64
	WarehouseID       int64
	Quantity          int64
	LowStockThreshold int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
