package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para posiciones de inventario (DIP).
type InventoryRepository interface {
	// Create persiste la posición y asigna su ID generado.
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, id int64) (*entity.Inventory, error)
	ListByWarehouse(ctx context.Context, warehouseID int64, limit, offset int) ([]*entity.Inventory, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
}
