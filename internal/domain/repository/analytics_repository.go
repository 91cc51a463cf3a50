package repository

import "context"

// ProductionStats resumen agregado del taller para el dashboard.
type ProductionStats struct {
	TotalOrders         int
	InCutting           int
	InSewing            int
	Finished            int
	TotalPiecesProduced int
}

// AnalyticsRepository consultas read-only de agregación para el dashboard.
type AnalyticsRepository interface {
	GetProductionStats(ctx context.Context) (*ProductionStats, error)
}
