package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFabricRequest alta de tela en el ledger.
type CreateFabricRequest struct {
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	ColorHex   string          `json:"color_hex"`
	StockRolls decimal.Decimal `json:"stock_rolls"`
	Notes      string          `json:"notes"`
}

// UpdateFabricRequest edición parcial de una tela.
type UpdateFabricRequest struct {
	Name       *string          `json:"name"`
	Color      *string          `json:"color"`
	ColorHex   *string          `json:"color_hex"`
	StockRolls *decimal.Decimal `json:"stock_rolls"`
	Notes      *string          `json:"notes"`
}

// FabricResponse representación de una tela.
type FabricResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	ColorHex   string          `json:"color_hex"`
	StockRolls decimal.Decimal `json:"stock_rolls"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// FabricListResponse listado paginado.
type FabricListResponse struct {
	Items []FabricResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
