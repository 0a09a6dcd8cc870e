package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
)

// AlertHandler expone el motor de alertas de stock bajo.
type AlertHandler struct {
	uc *alerts.UseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// GetLowStock godoc
// @Summary      Alertas de stock bajo por empresa
// @Description  Posiciones con quantity <= threshold, con días estimados hasta quiebre
//
//	según la velocidad de venta. Orden: días ascendente, product_id como desempate.
//
// @Tags         alerts
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("companyId")
	if err != nil || companyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_COMPANY_ID", Message: "companyId debe ser un entero positivo"})
	}

	report, err := h.uc.GenerateLowStockAlerts(c.Context(), int64(companyID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "companyId inválido"})
		case errors.Is(err, domain.ErrStoreUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "almacén de inventario no disponible"})
		case errors.Is(err, domain.ErrEstimatorUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "ESTIMATOR_UNAVAILABLE", Message: "estimador de ventas no disponible"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(report)
}
