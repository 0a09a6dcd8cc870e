package alerts

import (
	"context"

	"github.com/shopspring/decimal"
)

// SalesRateEstimator estima la velocidad de venta diaria de un producto.
// Contrato: determinista para un mismo snapshot, tasa no negativa, consultable
// producto a producto. Es el punto de extensión natural del motor: una
// implementación real derivaría la tasa del historial de transacciones.
type SalesRateEstimator interface {
	EstimateDailySalesRate(ctx context.Context, productID int64) (decimal.Decimal, error)
}
