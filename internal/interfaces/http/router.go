package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	SupplierUC  *usecase.SupplierUseCase
	InventoryUC *usecase.InventoryUseCase
	AlertsUC    *alerts.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Warehouses (incluye el inventario por bodega)
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Get("/:id/inventory", inventoryHandler.ListByWarehouse)

	// Inventory
	inventory := api.Group("/inventory")
	inventory.Put("/:id/quantity", inventoryHandler.AdjustQuantity)

	// Companies: bodegas y alertas de stock bajo
	companies := api.Group("/companies")
	alertHandler := NewAlertHandler(deps.AlertsUC)
	companies.Get("/:companyId/warehouses", warehouseHandler.ListByCompany)
	companies.Get("/:companyId/alerts/low-stock", alertHandler.GetLowStock)
}
