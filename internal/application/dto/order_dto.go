package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kavins/produccion-api/internal/domain"
	"github.com/kavins/produccion-api/internal/domain/entity"
)

// OrderItemRequest una línea de corte en una orden (planeación o corte confirmado).
type OrderItemRequest struct {
	ProductID        string          `json:"product_id"`
	ReferenceCode    string          `json:"reference_code"`
	Color            string          `json:"color"`
	ColorHex         string          `json:"color_hex"`
	RollsUsed        decimal.Decimal `json:"rolls_used"`
	PiecesPerSizeEst int             `json:"pieces_per_size_est"`
	EstimatedPieces  int             `json:"estimated_pieces"`
	Sizes            map[string]int  `json:"sizes"`
	FabricName       string          `json:"fabric_name"`
}

// ToEntity convierte la línea validando la grilla: una talla desconocida o una
// cantidad negativa es entrada inválida, no un cero silencioso.
func (r OrderItemRequest) ToEntity() (entity.OrderItem, error) {
	sizes, err := SizeMapFromRequest(r.Sizes)
	if err != nil {
		return entity.OrderItem{}, err
	}
	if r.RollsUsed.IsNegative() || r.PiecesPerSizeEst < 0 {
		return entity.OrderItem{}, domain.ErrInvalidInput
	}
	return entity.OrderItem{
		ProductID:        r.ProductID,
		ReferenceCode:    r.ReferenceCode,
		Color:            r.Color,
		ColorHex:         r.ColorHex,
		RollsUsed:        r.RollsUsed,
		PiecesPerSizeEst: r.PiecesPerSizeEst,
		EstimatedPieces:  r.EstimatedPieces,
		ActualPieces:     sizes.Total(),
		Sizes:            sizes,
		FabricName:       r.FabricName,
	}, nil
}

// SizeMapFromRequest valida las claves de talla del request contra el tallaje cerrado.
func SizeMapFromRequest(in map[string]int) (entity.SizeMap, error) {
	sizes := make(entity.SizeMap, len(in))
	for k, v := range in {
		size := entity.Size(k)
		if !entity.ValidSize(size) {
			return nil, domain.ErrInvalidInput
		}
		if v < 0 {
			return nil, domain.ErrInvalidInput
		}
		sizes[size] = v
	}
	return sizes, nil
}

// CreateOrderRequest crea una orden en PLANNED. ID es opcional (número de
// orden elegido por el operador); vacío genera un UUID.
type CreateOrderRequest struct {
	ID          string             `json:"id"`
	Description string             `json:"description"`
	Notes       string             `json:"notes"`
	Items       []OrderItemRequest `json:"items"`
}

// UpdateOrderRequest edición de una orden aún planeada.
type UpdateOrderRequest struct {
	Description *string            `json:"description"`
	Notes       *string            `json:"notes"`
	Items       []OrderItemRequest `json:"items"`
}

// ConfirmCutRequest cantidades reales de corte por línea, digitadas por el operador.
type ConfirmCutRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// DistributionLineRequest piezas de un color a enviar, por talla.
type DistributionLineRequest struct {
	Color string         `json:"color"`
	Sizes map[string]int `json:"sizes"`
}

// DistributeRequest reparte saldo de corte a una costurera.
type DistributeRequest struct {
	SeamstressID string                    `json:"seamstress_id"`
	Items        []DistributionLineRequest `json:"items"`
}

// OrderResponse representación completa de la orden.
type OrderResponse struct {
	ID                 string              `json:"id"`
	ReferenceCode      string              `json:"reference_code"`
	Description        string              `json:"description"`
	Fabric             string              `json:"fabric"`
	Items              []entity.OrderItem  `json:"items"`
	ActiveCuttingItems []entity.OrderItem  `json:"active_cutting_items"`
	Splits             []entity.OrderSplit `json:"splits"`
	Status             entity.OrderStatus  `json:"status"`
	RemainingPieces    int                 `json:"remaining_pieces"`
	Notes              string              `json:"notes,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	FinishedAt         *time.Time          `json:"finished_at,omitempty"`
}

// OrderListResponse listado paginado.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
