package entity

import "time"

// Seamstress representa una costurera del taller (externa o interna).
type Seamstress struct {
	ID        string
	Name      string
	Phone     string
	Specialty string
	Active    bool
	Address   string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
