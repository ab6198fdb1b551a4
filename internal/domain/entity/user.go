package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User representa un usuario del sistema demo (pertenece a un Business).
type User struct {
	ID           int
	Email        string
	PasswordHash string // bcrypt de la contraseña demo
	FullName     string
	FirstName    string
	LastName     string
	BusinessID   int
	Role         string
	IsActive     bool
	PhoneNumber  string
	CreatedAt    time.Time
	LastLogin    *time.Time // nil para usuarios inactivos
}
