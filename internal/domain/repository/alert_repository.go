package repository

import "context"

// SupplierContact datos de contacto del proveedor de un producto en stock bajo.
type SupplierContact struct {
	Name  string
	Email string
}

// LowStockItem resultado crudo del almacén para una posición con quantity <= threshold:
// la posición enriquecida con producto, bodega y proveedor (si existe).
// Supplier es nil cuando el producto no tiene proveedor asignado; la fila NO se descarta.
type LowStockItem struct {
	InventoryID   int64
	ProductID     int64
	ProductName   string
	SKU           string
	WarehouseName string
	Quantity      int64
	Threshold     int64
	Supplier      *SupplierContact
}

// AlertRepository define el puerto de lectura para el motor de alertas de stock bajo.
// La implementación aplica el join filtrado por empresa y por quantity <= threshold.
type AlertRepository interface {
	ListLowStock(ctx context.Context, companyID int64) ([]LowStockItem, error)
}
