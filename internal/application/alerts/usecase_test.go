package alerts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de colaboradores
// ──────────────────────────────────────────────────────────────────────────────

// fakeAlertRepo devuelve filas predefinidas o un error fijo.
type fakeAlertRepo struct {
	items []repository.LowStockItem
	err   error
}

func (f *fakeAlertRepo) ListLowStock(_ context.Context, _ int64) ([]repository.LowStockItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

// fakeEstimator devuelve una tasa por producto (defaultRate si no hay entrada).
type fakeEstimator struct {
	rates       map[int64]decimal.Decimal
	defaultRate decimal.Decimal
	err         error
}

func (f *fakeEstimator) EstimateDailySalesRate(_ context.Context, productID int64) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	if r, ok := f.rates[productID]; ok {
		return r, nil
	}
	return f.defaultRate, nil
}

func item(invID, prodID int64, name, sku, wh string, qty, threshold int64, sup *repository.SupplierContact) repository.LowStockItem {
	return repository.LowStockItem{
		InventoryID:   invID,
		ProductID:     prodID,
		ProductName:   name,
		SKU:           sku,
		WarehouseName: wh,
		Quantity:      qty,
		Threshold:     threshold,
		Supplier:      sup,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cómputo de días hasta quiebre
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: quantity=5, threshold=10, tasa=1.5 → trunc(5/1.5) = 3 días.
func TestGenerateLowStockAlerts_CalculaDiasHastaQuiebre(t *testing.T) {
	repo := &fakeAlertRepo{items: []repository.LowStockItem{
		item(1, 100, "Café molido 500g", "CAF-500", "Bodega Central", 5, 10,
			&repository.SupplierContact{Name: "Distribuidora Andina", Email: "ventas@andina.co"}),
	}}
	est := &fakeEstimator{defaultRate: decimal.NewFromFloat(1.5)}
	uc := alerts.NewUseCase(repo, est)

	report, err := uc.GenerateLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)

	a := report.Alerts[0]
	assert.Equal(t, int64(3), a.DaysUntilStockout, "trunc(5/1.5) debe ser 3")
	assert.Equal(t, "Café molido 500g", a.ProductName)
	assert.Equal(t, "CAF-500", a.SKU)
	assert.Equal(t, "Bodega Central", a.Warehouse)
	assert.Equal(t, int64(5), a.CurrentStock)
	assert.Equal(t, int64(10), a.Threshold)
	require.NotNil(t, a.Supplier)
	assert.Equal(t, "Distribuidora Andina", a.Supplier.Name)
	assert.Equal(t, "ventas@andina.co", a.Supplier.Email)
	assert.Equal(t, 1, report.Total)
}

// El truncamiento es hacia cero, sin redondeo adicional.
func TestGenerateLowStockAlerts_TruncamientoHaciaCero(t *testing.T) {
	repo := &fakeAlertRepo{items: []repository.LowStockItem{
		item(1, 100, "A", "A-1", "W", 2, 10, nil),  // 2/3 = 0.66 → 0
		item(2, 101, "B", "B-1", "W", 9, 10, nil),  // 9/3 = 3 exacto
		item(3, 102, "C", "C-1", "W", 10, 10, nil), // 10/3 = 3.33 → 3
	}}
	est := &fakeEstimator{defaultRate: decimal.NewFromInt(3)}
	uc := alerts.NewUseCase(repo, est)

	report, err := uc.GenerateLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 3, report.Total)

	days := map[int64]int64{}
	for _, a := range report.Alerts {
		days[a.ProductID] = a.DaysUntilStockout
	}
	assert.Equal(t, int64(0), days[100])
	assert.Equal(t, int64(3), days[101])
	assert.Equal(t, int64(3), days[102])
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla de inclusión y proveedor opcional
// ──────────────────────────────────────────────────────────────────────────────

// Posiciones con tasa de venta cero se excluyen aunque cumplan el umbral
// (no hay "días hasta quiebre" significativo; es política, no error).
func TestGenerateLowStockAlerts_TasaCeroExcluyePosicion(t *testing.T) {
	repo := &fakeAlertRepo{items: []repository.LowStockItem{
		item(1, 100, "Sin rotación", "SR-1", "W", 5, 10, nil),
	}}
	est := &fakeEstimator{defaultRate: decimal.Zero}
	uc := alerts.NewUseCase(repo, est)

	report, err := uc.GenerateLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, report.Alerts, "tasa cero no debe generar alerta")
	assert.Equal(t, 0, report.Total)
}

// Un producto sin proveedor produce la alerta con supplier nulo: la ausencia
// de proveedor no oculta el quiebre de stock.
func TestGenerateLowStockAlerts_ProductoSinProveedor(t *testing.T) {
	repo := &fakeAlertRepo{items: []repository.LowStockItem{
		item(1, 100, "Huérfano", "HU-1", "W", 4, 10, nil),
	}}
	est := &fakeEstimator{defaultRate: decimal.NewFromInt(2)}
	uc := alerts.NewUseCase(repo, est)

	report, err := uc.GenerateLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, report.Total)
	assert.Nil(t, report.Alerts[0].Supplier, "el proveedor ausente se marca explícitamente como null")
	assert.Equal(t, int64(2), report.Alerts[0].DaysUntilStockout)
}

// Tasas mixtas: solo las posiciones con tasa positiva aparecen; Total == len(Alerts).
func TestGenerateLowStockAlerts_TasasMixtas(t *testing.T) {
	repo := &fakeAlertRepo{items: []repository.LowStockItem{
		item(1, 100, "A", "A-1", "W", 6, 10, nil),
		item(2, 101, "B", "B-1", "W", 6, 10, nil),
		item(3, 102, "C", "C-1", "W", 6, 10, nil),
	}}
	est := &fakeEstimator{
		rates: map[int64]decimal.Decimal{
			100: decimal.NewFromInt(2),
			101: decimal.Zero,
			102: decimal.NewFromInt(1),
		},
	}
	uc := alerts.NewUseCase(repo, est)

	report, err := uc.GenerateLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	assert.Len(t, report.Alerts, report.Total, "total debe igualar el largo de la lista")
	for _, a := range report.Alerts {
		assert.NotEqual(t, int64(101), a.ProductID, "el producto con tasa cero no debe aparecer")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden determinista e idempotencia
// ──────────────────────────────────────────────────────────────────────────────

// El orden es días ascendente con product_id como desempate, sin importar
// el orden en que el almacén devuelva las filas.
func TestGenerateLowStockAlerts_OrdenDeterminista(t *testing.T) {
	repo := &fakeAlertRepo{items: []repository.LowStockItem{
		item(1, 300, "C", "C-1", "W", 9, 10, nil), // 9 días
		item(2, 100, "A", "A-1", "W", 3, 10, nil), // 3 días
		item(3, 200, "B", "B-1", "W", 3, 10, nil), // 3 días, id mayor
	}}
	est := &fakeEstimator{defaultRate: decimal.NewFromInt(1)}
	uc := alerts.NewUseCase(repo, est)

	report, err := uc.GenerateLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 3, report.Total)

	var ids []int64
	for _, a := range report.Alerts {
		ids = append(ids, a.ProductID)
	}
	assert.Equal(t, []int64{100, 200, 300}, ids)
}

// Con el almacén sin cambios, dos llamadas consecutivas son idénticas.
func TestGenerateLowStockAlerts_Idempotente(t *testing.T) {
	repo := &fakeAlertRepo{items: []repository.LowStockItem{
		item(1, 100, "A", "A-1", "W", 5, 10, nil),
		item(2, 101, "B", "B-1", "W", 2, 10, nil),
	}}
	est := &fakeEstimator{defaultRate: decimal.NewFromFloat(1.5)}
	uc := alerts.NewUseCase(repo, est)

	first, err := uc.GenerateLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	second, err := uc.GenerateLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// ──────────────────────────────────────────────────────────────────────────────
// Taxonomía de fallos
// ──────────────────────────────────────────────────────────────────────────────

// companyID no positivo se rechaza antes de consultar el almacén.
func TestGenerateLowStockAlerts_CompanyIDInvalido(t *testing.T) {
	uc := alerts.NewUseCase(&fakeAlertRepo{}, &fakeEstimator{defaultRate: decimal.NewFromInt(1)})

	for _, id := range []int64{0, -1} {
		report, err := uc.GenerateLowStockAlerts(context.Background(), id)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Fallo del almacén → ErrStoreUnavailable, nunca un reporte vacío exitoso.
func TestGenerateLowStockAlerts_AlmacenCaido(t *testing.T) {
	repo := &fakeAlertRepo{err: errors.New("connection refused")}
	uc := alerts.NewUseCase(repo, &fakeEstimator{defaultRate: decimal.NewFromInt(1)})

	report, err := uc.GenerateLowStockAlerts(context.Background(), 1)
	assert.Nil(t, report, "un fallo de consulta no debe producir reporte")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

// Fallo del estimador → ErrEstimatorUnavailable para todo el reporte
// (nunca degradar en silencio a tasa cero).
func TestGenerateLowStockAlerts_EstimadorCaido(t *testing.T) {
	repo := &fakeAlertRepo{items: []repository.LowStockItem{
		item(1, 100, "A", "A-1", "W", 5, 10, nil),
	}}
	est := &fakeEstimator{err: errors.New("timeout")}
	uc := alerts.NewUseCase(repo, est)

	report, err := uc.GenerateLowStockAlerts(context.Background(), 1)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrEstimatorUnavailable)
}

// Cero alertas es un resultado exitoso, no un error.
func TestGenerateLowStockAlerts_SinAlertasEsExito(t *testing.T) {
	uc := alerts.NewUseCase(&fakeAlertRepo{}, &fakeEstimator{defaultRate: decimal.NewFromInt(1)})

	report, err := uc.GenerateLowStockAlerts(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, report.Alerts, "la lista vacía debe serializarse como [] y no como null")
	assert.Equal(t, 0, report.Total)
}
