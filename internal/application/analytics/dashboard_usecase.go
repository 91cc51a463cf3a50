// Package analytics contiene los casos de uso read-only para el panel del taller.
package analytics

import (
	"context"

	"github.com/kavins/produccion-api/internal/application/dto"
	"github.com/kavins/produccion-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen de producción del taller: órdenes por
// etapa y total de piezas producidas (órdenes cerradas).
//
// Fuente de datos: AnalyticsRepository (consultas de agregación); no recorre
// las órdenes una por una.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStats construye el DashboardStatsDTO.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	stats, err := uc.analyticsRepo.GetProductionStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsDTO{
		TotalOrders:         stats.TotalOrders,
		InCutting:           stats.InCutting,
		InSewing:            stats.InSewing,
		Finished:            stats.Finished,
		TotalPiecesProduced: stats.TotalPiecesProduced,
	}, nil
}
