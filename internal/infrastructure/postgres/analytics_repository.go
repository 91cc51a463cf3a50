package postgres

import (
	"context"
	"fmt"

	"github.com/kavins/produccion-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas read-only para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetProductionStats calcula el resumen del taller en una sola consulta:
// conteo de órdenes por etapa y total de piezas reales de las órdenes
// terminadas (sumando actualPieces de cada línea del JSONB de items).
func (r *AnalyticsRepo) GetProductionStats(ctx context.Context) (*repository.ProductionStats, error) {
	query := `
		SELECT
			COUNT(*)                                          AS total_orders,
			COUNT(*) FILTER (WHERE status = 'CUTTING')        AS in_cutting,
			COUNT(*) FILTER (WHERE status = 'SEWING')         AS in_sewing,
			COUNT(*) FILTER (WHERE status = 'FINISHED')       AS finished,
			COALESCE(SUM(
				(SELECT COALESCE(SUM((item->>'actualPieces')::int), 0)
				 FROM jsonb_array_elements(items) AS item)
			) FILTER (WHERE status = 'FINISHED'), 0)          AS total_pieces
		FROM production_orders`

	var stats repository.ProductionStats
	err := r.q.QueryRow(ctx, query).Scan(
		&stats.TotalOrders, &stats.InCutting, &stats.InSewing, &stats.Finished, &stats.TotalPiecesProduced,
	)
	if err != nil {
		return nil, fmt.Errorf("production stats: %w", err)
	}
	return &stats, nil
}
