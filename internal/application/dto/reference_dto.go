package dto

import (
	"time"

	"github.com/kavins/produccion-api/internal/domain/entity"
)

// CreateReferenceRequest alta de referencia en el catálogo.
type CreateReferenceRequest struct {
	Code                   string                `json:"code"`
	Description            string                `json:"description"`
	DefaultFabric          string                `json:"default_fabric"`
	DefaultColors          []entity.ProductColor `json:"default_colors"`
	DefaultGrid            string                `json:"default_grid"`
	EstimatedPiecesPerRoll int                   `json:"estimated_pieces_per_roll"`
}

// UpdateReferenceRequest edición parcial de una referencia.
type UpdateReferenceRequest struct {
	Code                   *string               `json:"code"`
	Description            *string               `json:"description"`
	DefaultFabric          *string               `json:"default_fabric"`
	DefaultColors          []entity.ProductColor `json:"default_colors"`
	DefaultGrid            *string               `json:"default_grid"`
	EstimatedPiecesPerRoll *int                  `json:"estimated_pieces_per_roll"`
}

// ReferenceResponse representación de una referencia.
type ReferenceResponse struct {
	ID                     string                `json:"id"`
	Code                   string                `json:"code"`
	Description            string                `json:"description"`
	DefaultFabric          string                `json:"default_fabric"`
	DefaultColors          []entity.ProductColor `json:"default_colors"`
	DefaultGrid            string                `json:"default_grid"`
	EstimatedPiecesPerRoll int                   `json:"estimated_pieces_per_roll"`
	CreatedAt              time.Time             `json:"created_at"`
	UpdatedAt              time.Time             `json:"updated_at"`
}

// ReferenceListResponse listado paginado.
type ReferenceListResponse struct {
	Items []ReferenceResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
