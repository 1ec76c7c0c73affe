package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "ADMIN"
	RoleEncargado = "ENCARGADO"
	RoleVendedor  = "VENDEDOR"
)

// ValidRole informa si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleEncargado || s == RoleVendedor
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, ENCARGADO, VENDEDOR
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
