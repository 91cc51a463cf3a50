package dto

// DashboardStatsDTO resumen del taller para el panel principal.
type DashboardStatsDTO struct {
	TotalOrders         int `json:"total_orders"`
	InCutting           int `json:"in_cutting"`
	InSewing            int `json:"in_sewing"`
	Finished            int `json:"finished"`
	TotalPiecesProduced int `json:"total_pieces_produced"`
}
