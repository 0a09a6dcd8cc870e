package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ProductUseCase alta y consulta de productos. El alta crea también la posición
// de inventario inicial en la bodega indicada, dentro de una misma transacción.
type ProductUseCase struct {
	txRunner TxRunner
	products repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, products: products}
}

// Create crea un producto con su inventario inicial. SKU debe ser único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" || in.WarehouseID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.products.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	threshold := entity.DefaultLowStockThreshold
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		threshold = *in.LowStockThreshold
	}

	now := time.Now()
	product := &entity.Product{
		Name:       in.Name,
		SKU:        in.SKU,
		Price:      in.Price,
		SupplierID: in.SupplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Producto + posición inicial en una sola transacción: si falla el insert
	// de inventario no queda un producto sin stock registrado.
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		inv := &entity.Inventory{
			ProductID:         product.ID,
			WarehouseID:       in.WarehouseID,
			Quantity:          in.InitialQuantity,
			LowStockThreshold: threshold,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		return inventoryRepo.Create(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.products.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		SKU:        p.SKU,
		Price:      p.Price,
		SupplierID: p.SupplierID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
