package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/kavins/produccion-api/internal/application/dto"
	"github.com/kavins/produccion-api/internal/application/production"
	"github.com/kavins/produccion-api/internal/application/report"
	"github.com/kavins/produccion-api/internal/application/usecase"
	"github.com/kavins/produccion-api/internal/domain"
	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/pkg/metrics"
)

// ProductionHandler maneja las transiciones del ciclo de producción de una
// orden: confirmar corte, distribuir paquetes y cerrar paquetes. Cada
// operación es una transacción completa; no hay estados intermedios visibles.
type ProductionHandler struct {
	confirmCut  *production.ConfirmCutUseCase
	distribute  *production.DistributeUseCase
	finishSplit *production.FinishSplitUseCase
	sheet       *report.OrderSheetUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(
	confirmCut *production.ConfirmCutUseCase,
	distribute *production.DistributeUseCase,
	finishSplit *production.FinishSplitUseCase,
	sheet *report.OrderSheetUseCase,
) *ProductionHandler {
	return &ProductionHandler{
		confirmCut:  confirmCut,
		distribute:  distribute,
		finishSplit: finishSplit,
		sheet:       sheet,
	}
}

// ConfirmCut godoc
// @Summary      Confirmar corte de una orden
// @Description  Registra las cantidades reales cortadas, debita los rollos de
//
//	tela del ledger (todo o nada) y pasa la orden a CUTTING.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la orden"
// @Param        body  body  dto.ConfirmCutRequest  true  "líneas reales de corte"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/cut [post]
func (h *ProductionHandler) ConfirmCut(c *fiber.Ctx) error {
	var in dto.ConfirmCutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el corte necesita al menos una línea"})
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		item, err := it.ToEntity()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "línea de corte inválida"})
		}
		items = append(items, item)
	}

	order, err := h.confirmCut.ConfirmCut(c.Context(), c.Params("id"), items)
	if err != nil {
		var shortage *domain.StockShortageError
		if errors.As(err, &shortage) {
			metrics.CutsConfirmed.WithLabelValues(metrics.ResultRejected).Inc()
			metrics.StockRejections.Inc()
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "INSUFFICIENT_STOCK",
				Message: fmt.Sprintf("tela %s %s: se requieren %s rollos y hay %s",
					shortage.Fabric, shortage.Color, shortage.Required, shortage.Available),
			})
		}
		if errors.Is(err, domain.ErrNotFound) {
			metrics.CutsConfirmed.WithLabelValues(metrics.ResultRejected).Inc()
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		if errors.Is(err, domain.ErrConflict) {
			metrics.CutsConfirmed.WithLabelValues(metrics.ResultRejected).Inc()
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la orden no está en PLANNED"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			metrics.CutsConfirmed.WithLabelValues(metrics.ResultRejected).Inc()
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		metrics.CutsConfirmed.WithLabelValues(metrics.ResultError).Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.CutsConfirmed.WithLabelValues(metrics.ResultOK).Inc()
	return c.JSON(usecase.ToOrderResponse(order))
}

// Distribute godoc
// @Summary      Distribuir piezas a una costurera
// @Description  Descuenta del saldo activo las cantidades pedidas y crea un
//
//	paquete nuevo. Pedir más de lo disponible rechaza la operación completa.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la orden"
// @Param        body  body  dto.DistributeRequest  true  "costurera + cantidades por color/talla"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/distribute [post]
func (h *ProductionHandler) Distribute(c *fiber.Ctx) error {
	var in dto.DistributeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lines := make([]production.DistributionLine, 0, len(in.Items))
	for _, it := range in.Items {
		sizes, err := dto.SizeMapFromRequest(it.Sizes)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "grilla de tallas inválida"})
		}
		lines = append(lines, production.DistributionLine{Color: it.Color, Sizes: sizes})
	}

	order, err := h.distribute.Distribute(c.Context(), c.Params("id"), in.SeamstressID, lines)
	if err != nil {
		var shortage *domain.PieceShortageError
		if errors.As(err, &shortage) {
			metrics.Distributions.WithLabelValues(metrics.ResultRejected).Inc()
			metrics.PieceRejections.Inc()
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "INSUFFICIENT_PIECES",
				Message: fmt.Sprintf("color %s talla %s: se pidieron %d piezas y quedan %d",
					shortage.Color, shortage.Size, shortage.Requested, shortage.Available),
			})
		}
		if errors.Is(err, domain.ErrNotFound) {
			metrics.Distributions.WithLabelValues(metrics.ResultRejected).Inc()
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden o costurera no encontrada"})
		}
		if errors.Is(err, domain.ErrConflict) {
			metrics.Distributions.WithLabelValues(metrics.ResultRejected).Inc()
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la orden no tiene saldo distribuible en este estado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			metrics.Distributions.WithLabelValues(metrics.ResultRejected).Inc()
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "distribución inválida"})
		}
		metrics.Distributions.WithLabelValues(metrics.ResultError).Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.Distributions.WithLabelValues(metrics.ResultOK).Inc()
	return c.JSON(usecase.ToOrderResponse(order))
}

// FinishSplit godoc
// @Summary      Terminar un paquete de costura
// @Description  Marca el paquete como terminado. Si era el último pendiente y
//
//	el saldo activo es cero, la orden cierra en FINISHED.
//
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id       path  string  true  "ID de la orden"
// @Param        splitId  path  string  true  "ID del paquete"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/splits/{splitId}/finish [post]
func (h *ProductionHandler) FinishSplit(c *fiber.Ctx) error {
	order, err := h.finishSplit.FinishSplit(c.Context(), c.Params("id"), c.Params("splitId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.SplitsFinished.WithLabelValues(metrics.ResultRejected).Inc()
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden o paquete no encontrado"})
		}
		if errors.Is(err, domain.ErrConflict) {
			metrics.SplitsFinished.WithLabelValues(metrics.ResultRejected).Inc()
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el paquete no está en costura"})
		}
		metrics.SplitsFinished.WithLabelValues(metrics.ResultError).Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.SplitsFinished.WithLabelValues(metrics.ResultOK).Inc()
	return c.JSON(usecase.ToOrderResponse(order))
}

// OrderSheet godoc
// @Summary      Ficha de producción en PDF
// @Tags         production
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/sheet [get]
func (h *ProductionHandler) OrderSheet(c *fiber.Ctx) error {
	pdfBytes, err := h.sheet.GenerateSheet(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`inline; filename="orden-%s.pdf"`, c.Params("id")))
	return c.Send(pdfBytes)
}
