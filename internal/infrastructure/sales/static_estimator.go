package sales

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stockflow-api/internal/application/alerts"
)

var _ alerts.SalesRateEstimator = (*StaticEstimator)(nil)

// StaticEstimator devuelve la misma tasa diaria para todo producto.
// Es el placeholder detrás del puerto SalesRateEstimator: una implementación
// futura derivará la tasa del historial de ventas sin tocar el motor de alertas.
type StaticEstimator struct {
	rate decimal.Decimal
}

// NewStaticEstimator construye el estimador. Tasas negativas se normalizan a cero
// para respetar el contrato de tasa no negativa.
func NewStaticEstimator(rate decimal.Decimal) *StaticEstimator {
	if rate.IsNegative() {
		rate = decimal.Zero
	}
	return &StaticEstimator{rate: rate}
}

// EstimateDailySalesRate devuelve la tasa configurada, ignorando el producto.
func (e *StaticEstimator) EstimateDailySalesRate(_ context.Context, _ int64) (decimal.Decimal, error) {
	return e.rate, nil
}
