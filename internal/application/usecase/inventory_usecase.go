package usecase

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// InventoryUseCase consulta y ajuste de posiciones de inventario.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// ListByWarehouse lista las posiciones de una bodega con paginación.
func (uc *InventoryUseCase) ListByWarehouse(ctx context.Context, warehouseID int64, limit, offset int) (*dto.InventoryListResponse, error) {
	if warehouseID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByWarehouse(ctx, warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInventoryResponse(inv))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AdjustQuantity fija la cantidad de una posición (conteo físico / ajuste manual).
func (uc *InventoryUseCase) AdjustQuantity(ctx context.Context, id int64, in dto.AdjustQuantityRequest) (*dto.InventoryResponse, error) {
	if id <= 0 || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateQuantity(ctx, id, in.Quantity); err != nil {
		return nil, err
	}
	inv.Quantity = in.Quantity
	return toInventoryResponse(inv), nil
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:                inv.ID,
		ProductID:         inv.ProductID,
		WarehouseID:       inv.WarehouseID,
		Quantity:          inv.Quantity,
		LowStockThreshold: inv.LowStockThreshold,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}
}
