package entity

import "time"

// Roles que asigna el store de sesión.
// Login fabrica RoleAdmin y Register RoleUser aunque ambos flujos son equivalentes;
// la asimetría se conserva tal cual.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User identidad de la sesión local. No hay contraseña: la autenticación es simulada.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
