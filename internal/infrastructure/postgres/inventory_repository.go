package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste una nueva posición de inventario y asigna el ID generado.
// La tabla garantiza una posición por (product_id, warehouse_id).
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventories (product_id, warehouse_id, quantity, low_stock_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		inv.ProductID, inv.WarehouseID, inv.Quantity, inv.LowStockThreshold,
		inv.CreatedAt, inv.UpdatedAt,
	).Scan(&inv.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene una posición por ID.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, low_stock_threshold, created_at, updated_at
		FROM inventories WHERE id = $1`
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity,
		&inv.LowStockThreshold, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// ListByWarehouse lista las posiciones de una bodega con paginación.
func (r *InventoryRepo) ListByWarehouse(ctx context.Context, warehouseID int64, limit, offset int) ([]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, low_stock_threshold, created_at, updated_at
		FROM inventories WHERE warehouse_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity,
			&inv.LowStockThreshold, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// UpdateQuantity fija la cantidad de una posición.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventories SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}
