// Package report genera documentos imprimibles del taller (fichas de
// producción). Solo lectura: nada aquí muta órdenes ni stock.
package report

import (
	"context"

	"github.com/kavins/produccion-api/internal/domain"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

// OrderSheetUseCase arma la ficha PDF de una orden para el taller de corte.
type OrderSheetUseCase struct {
	orderRepo repository.OrderRepository
	generator OrderSheetGenerator
}

// NewOrderSheetUseCase construye el caso de uso.
func NewOrderSheetUseCase(orderRepo repository.OrderRepository, generator OrderSheetGenerator) *OrderSheetUseCase {
	return &OrderSheetUseCase{orderRepo: orderRepo, generator: generator}
}

// GenerateSheet devuelve los bytes del PDF de la orden.
func (uc *OrderSheetUseCase) GenerateSheet(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateOrderSheet(ctx, order)
}
