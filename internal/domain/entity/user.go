package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin  = "admin"
	RoleCajero = "cajero"
)

// User representa un usuario del punto de venta (cajero u administrador).
// Nombre y Apellido van separados porque el front los muestra así en la barra
// de sesión, igual que la respuesta de login.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Apellido     string
	Role         string
	Status       string // "active" | "suspended"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
