package dto

// SupplierContactDTO sub-registro de proveedor dentro de una alerta.
type SupplierContactDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LowStockAlertDTO una alerta de stock bajo para una posición de inventario.
// Supplier se serializa como null cuando el producto no tiene proveedor:
// la ausencia de proveedor nunca oculta un quiebre de stock.
type LowStockAlertDTO struct {
	ProductID         int64               `json:"product_id"`
	ProductName       string              `json:"product_name"`
	SKU               string              `json:"sku"`
	Warehouse         string              `json:"warehouse"`
	CurrentStock      int64               `json:"current_stock"`
	Threshold         int64               `json:"threshold"`
	DaysUntilStockout int64               `json:"days_until_stockout"`
	Supplier          *SupplierContactDTO `json:"supplier"`
}

// LowStockReportDTO reporte completo de alertas. Total == len(Alerts) siempre;
// una lista vacía con Total 0 es un resultado válido (ningún producto en riesgo).
type LowStockReportDTO struct {
	Alerts []LowStockAlertDTO `json:"alerts"`
	Total  int                `json:"total"`
}
