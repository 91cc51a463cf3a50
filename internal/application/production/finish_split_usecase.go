package production

import (
	"context"
	"time"

	"github.com/kavins/produccion-api/internal/domain"
	"github.com/kavins/produccion-api/internal/domain/entity"
	dproduction "github.com/kavins/produccion-api/internal/domain/production"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

// FinishSplitUseCase marca un paquete como terminado y evalúa el cierre de la
// orden: todos los paquetes terminados y saldo activo en cero ⇒ FINISHED.
type FinishSplitUseCase struct {
	txRunner TxRunner
}

// NewFinishSplitUseCase construye el caso de uso.
func NewFinishSplitUseCase(txRunner TxRunner) *FinishSplitUseCase {
	return &FinishSplitUseCase{txRunner: txRunner}
}

// FinishSplit termina el paquete indicado. Orden o paquete inexistente es
// ErrNotFound sin mutación parcial; un paquete ya terminado es ErrConflict.
func (uc *FinishSplitUseCase) FinishSplit(ctx context.Context, orderID, splitID string) (*entity.ProductionOrder, error) {
	if orderID == "" || splitID == "" {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.ProductionOrder
	err := uc.txRunner.Run(ctx, func(
		_ repository.FabricRepository,
		orderRepo repository.OrderRepository,
	) error {
		order, err := orderRepo.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		split := order.SplitByID(splitID)
		if split == nil {
			return domain.ErrNotFound
		}
		if split.Status != entity.StatusSewing {
			return domain.ErrConflict
		}

		now := time.Now()
		split.Status = entity.StatusFinished
		split.FinishedAt = &now

		order.Status = dproduction.ResolveStatus(order.Status, order.RemainingPieces(), order.Splits)
		if order.Status == entity.StatusFinished && order.FinishedAt == nil {
			order.FinishedAt = &now
		}
		order.UpdatedAt = now
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
