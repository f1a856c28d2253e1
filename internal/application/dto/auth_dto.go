package dto

// LoginRequest entrada del login. Acepta JSON {email, password} o el form
// OAuth2 clásico donde el campo username transporta el email.
type LoginRequest struct {
	Email    string `json:"email" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse salida del login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // siempre "bearer"
}
