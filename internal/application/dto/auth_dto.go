package dto

// LoginRequest credenciales de acceso a la consola.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// BackendUser usuario autenticado tal y como lo devuelve el backend junto al token.
type BackendUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// LoginResponse respuesta del login: bearer token + usuario.
type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	User        BackendUser `json:"user"`
}
