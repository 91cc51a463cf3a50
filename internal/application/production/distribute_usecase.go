package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kavins/produccion-api/internal/domain"
	"github.com/kavins/produccion-api/internal/domain/entity"
	dproduction "github.com/kavins/produccion-api/internal/domain/production"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

// DistributionLine piezas de un color a enviar a la costurera, por talla.
type DistributionLine struct {
	Color string
	Sizes entity.SizeMap
}

// DistributeUseCase reparte saldo de corte activo a una costurera: crea un
// paquete (split) nuevo y decrementa el working set. El ledger de telas no
// interviene aquí; la tela ya se consumió al cortar.
type DistributeUseCase struct {
	txRunner       TxRunner
	seamstressRepo repository.SeamstressRepository
}

// NewDistributeUseCase construye el caso de uso.
func NewDistributeUseCase(txRunner TxRunner, seamstressRepo repository.SeamstressRepository) *DistributeUseCase {
	return &DistributeUseCase{txRunner: txRunner, seamstressRepo: seamstressRepo}
}

// Distribute envía las cantidades pedidas a la costurera. Un pedido que
// excede el saldo de una línea se rechaza completo (domain.PieceShortageError);
// el recorte silencioso perdería piezas sin aviso.
func (uc *DistributeUseCase) Distribute(ctx context.Context, orderID, seamstressID string, lines []DistributionLine) (*entity.ProductionOrder, error) {
	if orderID == "" || seamstressID == "" || len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	totalRequested := 0
	for _, line := range lines {
		for _, qty := range line.Sizes {
			if qty < 0 {
				return nil, domain.ErrInvalidInput
			}
			totalRequested += qty
		}
	}
	if totalRequested == 0 {
		return nil, domain.ErrInvalidInput
	}

	seamstress, err := uc.seamstressRepo.GetByID(seamstressID)
	if err != nil {
		return nil, err
	}
	if seamstress == nil {
		return nil, domain.ErrNotFound
	}

	var updated *entity.ProductionOrder
	err = uc.txRunner.Run(ctx, func(
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
		if order.Status != entity.StatusCutting && order.Status != entity.StatusSewing {
			return domain.ErrConflict
		}
		if order.RemainingPieces() == 0 {
			return domain.ErrConflict
		}

		now := time.Now()
		splitItems := make([]entity.OrderItem, 0, len(lines))
		for _, line := range lines {
			active := order.ActiveItemByColor(line.Color)
			if active == nil {
				return domain.ErrInvalidInput
			}
			// Validación completa antes de decrementar nada.
			for size, qty := range line.Sizes {
				if available := active.Sizes.Get(size); qty > available {
					return &domain.PieceShortageError{
						Color:     line.Color,
						Size:      string(size),
						Requested: qty,
						Available: available,
					}
				}
			}

			// El paquete hereda los metadatos del plan, con las cantidades enviadas.
			plan := planItemByColor(order.Items, line.Color)
			splitItems = append(splitItems, entity.OrderItem{
				ProductID:     plan.ProductID,
				ReferenceCode: plan.ReferenceCode,
				Color:         line.Color,
				ColorHex:      plan.ColorHex,
				RollsUsed:     decimal.Zero,
				ActualPieces:  line.Sizes.Total(),
				Sizes:         line.Sizes.Clone(),
				FabricName:    plan.FabricName,
			})

			for size, qty := range line.Sizes {
				remaining := active.Sizes.Get(size) - qty
				if remaining < 0 {
					remaining = 0
				}
				active.Sizes[size] = remaining
			}
			active.ActualPieces = active.Sizes.Total()
		}

		order.Splits = append(order.Splits, entity.OrderSplit{
			ID:             uuid.New().String(),
			SeamstressID:   seamstress.ID,
			SeamstressName: seamstress.Name,
			Status:         entity.StatusSewing,
			Items:          splitItems,
			CreatedAt:      now,
		})
		order.Status = dproduction.ResolveStatus(order.Status, order.RemainingPieces(), order.Splits)
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

// planItemByColor busca la línea del plan por color; si el plan no la tiene
// (no debería ocurrir con una línea activa presente), devuelve una vacía.
func planItemByColor(items []entity.OrderItem, color string) entity.OrderItem {
	for _, it := range items {
		if it.Color == color {
			return it
		}
	}
	return entity.OrderItem{Color: color}
}
