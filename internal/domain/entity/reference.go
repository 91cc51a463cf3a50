package entity

import "time"

// GridType tipo de grilla de tallas por defecto de una referencia.
const (
	GridStandard = "STANDARD" // P, M, G, GG
	GridPlus     = "PLUS"     // G1, G2, G3
	GridCustom   = "CUSTOM"
)

// ProductColor un color ofrecido por la referencia, con su hex para la UI.
type ProductColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ProductReference es el catálogo de modelos del taller: el código de la
// prenda, su tela por defecto y los colores en que se produce. Al planear una
// orden, cada color por defecto genera una línea de corte.
type ProductReference struct {
	ID                    string
	Code                  string
	Description           string
	DefaultFabric         string
	DefaultColors         []ProductColor
	DefaultGrid           string
	EstimatedPiecesPerRoll int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
