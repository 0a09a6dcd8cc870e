package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo consultas de solo lectura para el motor de alertas de stock bajo.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// ListLowStock devuelve las posiciones de la empresa con quantity <= threshold,
// enriquecidas con producto, bodega y proveedor.
// El proveedor va en LEFT JOIN: un producto sin proveedor no se descarta del
// resultado; sus columnas llegan NULL y se mapean a Supplier nil.
func (r *AlertRepo) ListLowStock(ctx context.Context, companyID int64) ([]repository.LowStockItem, error) {
	const query = `
	SELECT
	    i.id                  AS inventory_id,
	    p.id                  AS product_id,
	    p.name                AS product_name,
	    p.sku,
	    w.name                AS warehouse_name,
	    i.quantity,
	    i.low_stock_threshold,
	    s.name                AS supplier_name,
	    s.contact_email       AS supplier_email
	FROM inventories i
	JOIN products   p ON p.id = i.product_id
	JOIN warehouses w ON w.id = i.warehouse_id
	LEFT JOIN suppliers s ON s.id = p.supplier_id
	WHERE w.company_id = $1
	  AND i.quantity <= i.low_stock_threshold
	ORDER BY p.id, i.id`

	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("alerts.ListLowStock: %w", err)
	}
	defer rows.Close()

	var items []repository.LowStockItem
	for rows.Next() {
		var (
			item     repository.LowStockItem
			supName  *string
			supEmail *string
		)
		if err := rows.Scan(
			&item.InventoryID,
			&item.ProductID,
			&item.ProductName,
			&item.SKU,
			&item.WarehouseName,
			&item.Quantity,
			&item.Threshold,
			&supName,
			&supEmail,
		); err != nil {
			return nil, fmt.Errorf("alerts.ListLowStock scan: %w", err)
		}
		if supName != nil {
			contact := repository.SupplierContact{Name: *supName}
			if supEmail != nil {
				contact.Email = *supEmail
			}
			item.Supplier = &contact
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
