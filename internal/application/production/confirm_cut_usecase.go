// Package production implementa los casos de uso del ciclo de producción:
// confirmación de corte (con débito de stock), distribución a costureras y
// cierre de paquetes. Todas las mutaciones corren dentro de una transacción
// con la fila de la orden bloqueada (SELECT FOR UPDATE), de modo que dos
// sesiones no puedan leer el mismo saldo y sobre-asignar piezas.
package production

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kavins/produccion-api/internal/domain"
	"github.com/kavins/produccion-api/internal/domain/entity"
	dproduction "github.com/kavins/produccion-api/internal/domain/production"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

// ConfirmCutUseCase aplica la transición PLANNED → CUTTING: fija las
// cantidades reales de corte, debita el ledger de telas (todo-o-nada) y
// siembra el working set de corte activo.
type ConfirmCutUseCase struct {
	txRunner TxRunner
}

// NewConfirmCutUseCase construye el caso de uso.
func NewConfirmCutUseCase(txRunner TxRunner) *ConfirmCutUseCase {
	return &ConfirmCutUseCase{txRunner: txRunner}
}

// ConfirmCut confirma el corte de la orden con las líneas finalizadas por el
// operador. Si alguna clave (tela, color) agregada no alcanza, ningún stock
// se debita y la orden queda intacta; el faltante exacto viaja en el error
// (domain.StockShortageError).
func (uc *ConfirmCutUseCase) ConfirmCut(ctx context.Context, orderID string, items []entity.OrderItem) (*entity.ProductionOrder, error) {
	if orderID == "" || len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.ProductionOrder
	err := uc.txRunner.Run(ctx, func(
		fabricRepo repository.FabricRepository,
		orderRepo repository.OrderRepository,
	) error {
		order, err := orderRepo.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.StatusPlanned {
			return domain.ErrConflict
		}

		final := dproduction.NormalizeCutItems(items)
		usage := dproduction.AggregateFabricUsage(final)

		// Débito todo-o-nada: primero se validan todas las claves con la fila
		// bloqueada; recién cuando todas alcanzan se escribe alguna.
		type pendingDebit struct {
			fabricID string
			newStock decimal.Decimal
		}
		debits := make([]pendingDebit, 0, len(usage))
		for key, required := range usage {
			fabric, err := fabricRepo.GetByKeyForUpdate(key.Fabric, key.Color)
			if err != nil {
				return err
			}
			available := decimal.Zero
			if fabric != nil {
				available = fabric.StockRolls
			}
			if fabric == nil || available.LessThan(required) {
				return &domain.StockShortageError{
					Fabric:    key.Fabric,
					Color:     key.Color,
					Required:  required,
					Available: available,
				}
			}
			debits = append(debits, pendingDebit{fabricID: fabric.ID, newStock: available.Sub(required)})
		}
		for _, d := range debits {
			if err := fabricRepo.UpdateStock(d.fabricID, d.newStock); err != nil {
				return err
			}
		}

		now := time.Now()
		order.Items = final
		// Copia profunda: la distribución muta el working set, nunca el plan.
		order.ActiveCuttingItems = entity.CloneItems(final)
		order.Status = entity.StatusCutting
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
