package production

import (
	"github.com/shopspring/decimal"

	"github.com/kavins/produccion-api/internal/domain/entity"
)

// FabricKey clave de agregación del consumo de tela: el ledger de stock se
// debita por (tela, color), nunca línea por línea.
type FabricKey struct {
	Fabric string
	Color  string
}

// NormalizeCutItems fija las cantidades reales de corte de cada línea.
// Si la grilla quedó en cero pero el planeamiento trae estimación por talla,
// se sintetiza una distribución uniforme sobre la grilla estándar (P/M/G/GG)
// y ActualPieces pasa a ser cuatro veces la estimación. En caso contrario
// ActualPieces es la suma de las tallas digitadas.
func NormalizeCutItems(items []entity.OrderItem) []entity.OrderItem {
	out := entity.CloneItems(items)
	for n := range out {
		it := &out[n]
		total := it.Sizes.Total()
		if total == 0 && it.PiecesPerSizeEst > 0 {
			grid := make(entity.SizeMap, len(entity.StandardSizes))
			for _, s := range entity.StandardSizes {
				grid[s] = it.PiecesPerSizeEst
			}
			it.Sizes = grid
			it.ActualPieces = it.PiecesPerSizeEst * len(entity.StandardSizes)
			continue
		}
		it.ActualPieces = total
	}
	return out
}

// AggregateFabricUsage agrupa RollsUsed por (tela, color) sumando claves
// duplicadas: dos líneas sobre la misma tela/color deben validarse contra el
// stock como un solo requerimiento, no por separado.
func AggregateFabricUsage(items []entity.OrderItem) map[FabricKey]decimal.Decimal {
	usage := make(map[FabricKey]decimal.Decimal)
	for _, it := range items {
		key := FabricKey{Fabric: it.FabricName, Color: it.Color}
		usage[key] = usage[key].Add(it.RollsUsed)
	}
	return usage
}
