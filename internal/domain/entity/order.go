package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de una orden de producción (y de sus paquetes de costura).
// La progresión es monótona: nunca retrocede ni se salta etapas.
type OrderStatus string

const (
	StatusPlanned  OrderStatus = "PLANNED"
	StatusCutting  OrderStatus = "CUTTING"
	StatusSewing   OrderStatus = "SEWING"
	StatusFinished OrderStatus = "FINISHED"
)

// rank orden de progresión para el guard de monotonía.
func (s OrderStatus) rank() int {
	switch s {
	case StatusPlanned:
		return 0
	case StatusCutting:
		return 1
	case StatusSewing:
		return 2
	case StatusFinished:
		return 3
	}
	return -1
}

// Before indica si s es una etapa anterior a other.
func (s OrderStatus) Before(other OrderStatus) bool { return s.rank() < other.rank() }

// OrderItem es una línea de corte planeada: una referencia en un color, con su
// consumo de rollos y la grilla de tallas. Los tags JSON definen la
// representación persistida (columnas JSONB) y la respuesta de la API.
type OrderItem struct {
	ProductID        string          `json:"productId"`
	ReferenceCode    string          `json:"referenceCode"`
	Color            string          `json:"color"`
	ColorHex         string          `json:"colorHex,omitempty"`
	RollsUsed        decimal.Decimal `json:"rollsUsed"`
	PiecesPerSizeEst int             `json:"piecesPerSizeEst"`
	EstimatedPieces  int             `json:"estimatedPieces"`
	ActualPieces     int             `json:"actualPieces"`
	Sizes            SizeMap         `json:"sizes"`
	FabricName       string          `json:"fabricName"`
}

// Clone copia profunda de la línea (la grilla incluida).
func (i OrderItem) Clone() OrderItem {
	out := i
	out.Sizes = i.Sizes.Clone()
	return out
}

// CloneItems copia profunda de una lista de líneas. El working set de corte
// activo se siembra con esto para que la mutación de la distribución jamás
// comparta memoria con el registro de planeación.
func CloneItems(items []OrderItem) []OrderItem {
	out := make([]OrderItem, len(items))
	for n, it := range items {
		out[n] = it.Clone()
	}
	return out
}

// OrderSplit es un lote de piezas entregado a una costurera. Sus items llevan
// solo las cantidades enviadas, nunca las cantidades totales de la orden.
type OrderSplit struct {
	ID             string      `json:"id"`
	SeamstressID   string      `json:"seamstressId"`
	SeamstressName string      `json:"seamstressName"`
	Status         OrderStatus `json:"status"`
	Items          []OrderItem `json:"items"`
	CreatedAt      time.Time   `json:"createdAt"`
	FinishedAt     *time.Time  `json:"finishedAt,omitempty"`
}

// ProductionOrder raíz del agregado de producción.
//   - Items: registro de planeación, inmutable después del corte.
//   - ActiveCuttingItems: saldo vivo (cortado y aún no distribuido) por color.
//   - Splits: ledger append-only de eventos de distribución.
type ProductionOrder struct {
	ID                 string
	ReferenceCode      string
	Description        string
	Fabric             string
	Items              []OrderItem
	ActiveCuttingItems []OrderItem
	Splits             []OrderSplit
	Status             OrderStatus
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	FinishedAt         *time.Time
}

// ActiveItemByColor devuelve la línea activa del color, o nil.
func (o *ProductionOrder) ActiveItemByColor(color string) *OrderItem {
	for n := range o.ActiveCuttingItems {
		if o.ActiveCuttingItems[n].Color == color {
			return &o.ActiveCuttingItems[n]
		}
	}
	return nil
}

// RemainingPieces saldo total de piezas cortadas sin distribuir.
func (o *ProductionOrder) RemainingPieces() int {
	total := 0
	for _, it := range o.ActiveCuttingItems {
		total += it.ActualPieces
	}
	return total
}

// SplitByID devuelve el paquete por ID, o nil.
func (o *ProductionOrder) SplitByID(id string) *OrderSplit {
	for n := range o.Splits {
		if o.Splits[n].ID == id {
			return &o.Splits[n]
		}
	}
	return nil
}

// AllSplitsFinished indica si todos los paquetes están terminados.
// Con cero paquetes devuelve true; el cierre exige además al menos un paquete.
func (o *ProductionOrder) AllSplitsFinished() bool {
	for _, s := range o.Splits {
		if s.Status != StatusFinished {
			return false
		}
	}
	return true
}
