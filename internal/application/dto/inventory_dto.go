package dto

import "time"

// AdjustQuantityRequest entrada para fijar la cantidad de una posición de inventario.
type AdjustQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// InventoryResponse salida de una posición de inventario.
type InventoryResponse struct {
	ID                int64     `json:"id"`
	ProductID         int64     `json:"product_id"`
	WarehouseID       int64     `json:"warehouse_id"`
	Quantity          int64     `json:"quantity"`
	LowStockThreshold int64     `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// InventoryListResponse lista paginada de posiciones.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
