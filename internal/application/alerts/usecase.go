package alerts

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// UseCase motor de alertas de stock bajo. Camino de lectura puro y sin estado:
// recibe sus colaboradores por constructor (nunca singletons de proceso) y no
// realiza escrituras, por lo que es seguro ante invocaciones concurrentes.
type UseCase struct {
	repo      repository.AlertRepository
	estimator SalesRateEstimator
}

// NewUseCase construye el motor con el almacén de inventario y el estimador de ventas.
func NewUseCase(repo repository.AlertRepository, estimator SalesRateEstimator) *UseCase {
	return &UseCase{repo: repo, estimator: estimator}
}

// GenerateLowStockAlerts devuelve el reporte de posiciones en stock bajo para la empresa.
// Operación idempotente: con el almacén sin cambios, llamadas repetidas producen el
// mismo resultado. Reglas:
//   - solo posiciones con quantity <= threshold (filtro del almacén);
//   - solo se incluyen posiciones con tasa de venta > 0: sin tasa no hay
//     "días hasta quiebre" significativo (política de filtrado, no un error);
//   - days_until_stockout = trunc(quantity / tasa), truncamiento hacia cero;
//   - orden determinista: días ascendente, luego product_id ascendente;
//   - un fallo del almacén o del estimador aborta el reporte completo
//     (nunca un reporte parcial entregado como completo).
func (uc *UseCase) GenerateLowStockAlerts(ctx context.Context, companyID int64) (*dto.LowStockReportDTO, error) {
	if companyID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	items, err := uc.repo.ListLowStock(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	alerts := make([]dto.LowStockAlertDTO, 0, len(items))
	for _, item := range items {
		rate, err := uc.estimator.EstimateDailySalesRate(ctx, item.ProductID)
		if err != nil {
			// Degradar en silencio (tasa cero) corrompería days_until_stockout
			// sin señalizarlo: se aborta el reporte completo.
			return nil, fmt.Errorf("%w: producto %d: %v", domain.ErrEstimatorUnavailable, item.ProductID, err)
		}
		if !rate.IsPositive() {
			continue
		}

		days := decimal.NewFromInt(item.Quantity).Div(rate).IntPart()

		var supplier *dto.SupplierContactDTO
		if item.Supplier != nil {
			supplier = &dto.SupplierContactDTO{
				Name:  item.Supplier.Name,
				Email: item.Supplier.Email,
			}
		}

		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:         item.ProductID,
			ProductName:       item.ProductName,
			SKU:               item.SKU,
			Warehouse:         item.WarehouseName,
			CurrentStock:      item.Quantity,
			Threshold:         item.Threshold,
			DaysUntilStockout: days,
			Supplier:          supplier,
		})
	}

	// Orden estable: lo más urgente primero, product_id como desempate.
	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.DaysUntilStockout != b.DaysUntilStockout {
			return a.DaysUntilStockout < b.DaysUntilStockout
		}
		return a.ProductID < b.ProductID
	})

	return &dto.LowStockReportDTO{Alerts: alerts, Total: len(alerts)}, nil
}
