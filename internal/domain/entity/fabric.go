package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fabric representa una tela en stock, identificada para el ledger por el par
// (Name, Color): las líneas de corte referencian la tela por nombre y color,
// no por ID. StockRolls se mide en rollos fraccionarios y nunca es negativo.
type Fabric struct {
	ID         string
	Name       string
	Color      string
	ColorHex   string
	StockRolls decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
