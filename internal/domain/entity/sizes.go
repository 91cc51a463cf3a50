package entity

// Size es una talla del tallaje de confección. Conjunto cerrado: una clave
// desconocida en la grilla no puede colarse en las sumas.
type Size string

const (
	SizeP  Size = "P"
	SizeM  Size = "M"
	SizeG  Size = "G"
	SizeGG Size = "GG"
	SizeG1 Size = "G1"
	SizeG2 Size = "G2"
	SizeG3 Size = "G3"
)

// StandardSizes grilla estándar (la estimación uniforme del corte se reparte sobre estas).
var StandardSizes = []Size{SizeP, SizeM, SizeG, SizeGG}

// AllSizes todas las tallas admitidas, incluida la grilla plus.
var AllSizes = []Size{SizeP, SizeM, SizeG, SizeGG, SizeG1, SizeG2, SizeG3}

// ValidSize indica si s pertenece al tallaje admitido.
func ValidSize(s Size) bool {
	for _, k := range AllSizes {
		if k == s {
			return true
		}
	}
	return false
}

// SizeMap cantidad de piezas por talla. Las claves ausentes cuentan como 0.
type SizeMap map[Size]int

// Get devuelve la cantidad de la talla (0 si no está presente).
func (m SizeMap) Get(s Size) int {
	if m == nil {
		return 0
	}
	return m[s]
}

// Total suma todas las tallas.
func (m SizeMap) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Clone devuelve una copia independiente.
func (m SizeMap) Clone() SizeMap {
	out := make(SizeMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
