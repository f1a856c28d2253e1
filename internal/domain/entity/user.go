package entity

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleClient = "client"
)

// ValidRole indica si s es uno de los tres roles cerrados.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleStaff || s == RoleClient
}

// User representa un usuario del sistema: administradores, personal interno
// y clientes mayoristas comparten la misma tabla.
type User struct {
	ID           int64
	Email        string // único, sensible a mayúsculas tal como se almacena
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	FullName     string // opcional
	Role         string // admin, staff, client
}
