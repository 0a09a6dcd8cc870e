package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	apphttp "github.com/jhoicas/stockflow-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type stubAlertRepo struct {
	items []repository.LowStockItem
	err   error
}

func (s *stubAlertRepo) ListLowStock(_ context.Context, _ int64) ([]repository.LowStockItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

type stubEstimator struct {
	rate decimal.Decimal
}

func (s *stubEstimator) EstimateDailySalesRate(_ context.Context, _ int64) (decimal.Decimal, error) {
	return s.rate, nil
}

// buildTestApp construye una app Fiber con las rutas reales y el motor de alertas
// cableado sobre fakes (sin base de datos).
func buildTestApp(repo *stubAlertRepo, rate decimal.Decimal) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   &usecase.ProductUseCase{},
		WarehouseUC: &usecase.WarehouseUseCase{},
		SupplierUC:  &usecase.SupplierUseCase{},
		InventoryUC: &usecase.InventoryUseCase{},
		AlertsUC:    alerts.NewUseCase(repo, &stubEstimator{rate: rate}),
	})
	return app
}

func getAlerts(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

type reportBody struct {
	Alerts []struct {
		ProductName       string          `json:"product_name"`
		SKU               string          `json:"sku"`
		Warehouse         string          `json:"warehouse"`
		CurrentStock      int64           `json:"current_stock"`
		Threshold         int64           `json:"threshold"`
		DaysUntilStockout int64           `json:"days_until_stockout"`
		Supplier          json.RawMessage `json:"supplier"`
	} `json:"alerts"`
	Total int `json:"total"`
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/companies/:companyId/alerts/low-stock
// ──────────────────────────────────────────────────────────────────────────────

// Camino feliz: 200 con el contrato JSON del reporte.
func TestGetLowStock_ReporteOK(t *testing.T) {
	repo := &stubAlertRepo{items: []repository.LowStockItem{
		{
			InventoryID: 1, ProductID: 100,
			ProductName: "Café molido 500g", SKU: "CAF-500",
			WarehouseName: "Bodega Central", Quantity: 5, Threshold: 10,
			Supplier: &repository.SupplierContact{Name: "Distribuidora Andina", Email: "ventas@andina.co"},
		},
	}}
	app := buildTestApp(repo, decimal.NewFromFloat(1.5))

	resp := getAlerts(t, app, "/api/companies/1/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body reportBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Alerts, 1)
	assert.Equal(t, "CAF-500", body.Alerts[0].SKU)
	assert.Equal(t, int64(3), body.Alerts[0].DaysUntilStockout, "trunc(5/1.5) = 3")
	assert.JSONEq(t, `{"name":"Distribuidora Andina","email":"ventas@andina.co"}`, string(body.Alerts[0].Supplier))
}

// Producto sin proveedor: la alerta aparece con supplier null, no se descarta.
func TestGetLowStock_ProveedorNull(t *testing.T) {
	repo := &stubAlertRepo{items: []repository.LowStockItem{
		{InventoryID: 1, ProductID: 100, ProductName: "Huérfano", SKU: "HU-1",
			WarehouseName: "W", Quantity: 4, Threshold: 10, Supplier: nil},
	}}
	app := buildTestApp(repo, decimal.NewFromInt(2))

	resp := getAlerts(t, app, "/api/companies/1/alerts/low-stock")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body reportBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "null", string(body.Alerts[0].Supplier), "el proveedor ausente se serializa como null explícito")
}

// Sin posiciones en riesgo: 200 con lista vacía y total 0, nunca un error.
func TestGetLowStock_SinAlertas(t *testing.T) {
	app := buildTestApp(&stubAlertRepo{}, decimal.NewFromInt(1))

	resp := getAlerts(t, app, "/api/companies/7/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body reportBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.Total)
	assert.NotNil(t, body.Alerts)
	assert.Empty(t, body.Alerts)
}

// companyId no numérico o no positivo: 400, validación de transporte.
func TestGetLowStock_CompanyIDInvalido(t *testing.T) {
	app := buildTestApp(&stubAlertRepo{}, decimal.NewFromInt(1))

	for _, path := range []string{
		"/api/companies/abc/alerts/low-stock",
		"/api/companies/0/alerts/low-stock",
		"/api/companies/-3/alerts/low-stock",
	} {
		resp := getAlerts(t, app, path)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "path %s debe rechazarse", path)
		resp.Body.Close()
	}
}

// Fallo del almacén: 503 con código STORE_UNAVAILABLE, no un 200 vacío.
func TestGetLowStock_AlmacenCaido(t *testing.T) {
	repo := &stubAlertRepo{err: errors.New("connection refused")}
	app := buildTestApp(repo, decimal.NewFromInt(1))

	resp := getAlerts(t, app, "/api/companies/1/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "STORE_UNAVAILABLE", errBody["code"])
}
