package entity

import "time"

// Roles de usuario para RBAC.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador" // lanza cortes y distribuciones, sin gestión de usuarios
)

// User representa un usuario del sistema de producción.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // "admin" | "operador"
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
