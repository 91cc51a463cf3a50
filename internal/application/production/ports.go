package production

import (
	"context"

	"github.com/kavins/produccion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El débito del ledger de telas y la escritura
// de la orden comparten una sola frontera transaccional: o ambos se
// confirman, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		fabricRepo repository.FabricRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
