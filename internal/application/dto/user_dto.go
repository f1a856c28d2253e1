package dto

// RegisterRequest entrada para registrar un usuario.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"` // opcional, por defecto client
}

// UpdateUserRequest entrada para actualizar un usuario: solo los campos
// presentes se sobrescriben; el password llega plano y se re-hashea.
type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// UserResponse salida de un usuario. Nunca incluye el hash del password.
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
}
