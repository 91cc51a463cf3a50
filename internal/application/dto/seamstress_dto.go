package dto

import "time"

// CreateSeamstressRequest alta de costurera.
type CreateSeamstressRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	Address   string `json:"address"`
	City      string `json:"city"`
}

// UpdateSeamstressRequest edición parcial de una costurera.
type UpdateSeamstressRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Specialty *string `json:"specialty"`
	Active    *bool   `json:"active"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
}

// SeamstressResponse representación de una costurera.
type SeamstressResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Specialty string    `json:"specialty"`
	Active    bool      `json:"active"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeamstressListResponse listado paginado.
type SeamstressListResponse struct {
	Items []SeamstressResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
