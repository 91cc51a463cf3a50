package report

import (
	"context"

	"github.com/kavins/produccion-api/internal/domain/entity"
)

// OrderSheetGenerator genera la ficha imprimible de una orden de producción
// (hoja de corte con la grilla por color). Implementación en infrastructure/pdf.
type OrderSheetGenerator interface {
	GenerateOrderSheet(ctx context.Context, order *entity.ProductionOrder) ([]byte, error)
}
