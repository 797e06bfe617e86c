package dto

// LoginRequest entrada para login (email funciona como login).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el perfil del usuario (nunca el hash).
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// RecuperarSenhaRequest entrada para recuperación de senha.
type RecuperarSenhaRequest struct {
	Email            string `json:"email" validate:"required,email"`
	EmailRecuperacao string `json:"email_recuperacao" validate:"required,email"`
}

// RecuperarSenhaResponse devuelve la senha temporal en texto plano.
// Es el único momento en que será visible: no se puede recuperar después.
type RecuperarSenhaResponse struct {
	SenhaTemporaria string `json:"senha_temporaria"`
}

// AlterarSenhaRequest entrada para cambio de senha del usuario autenticado.
type AlterarSenhaRequest struct {
	NovaSenha string `json:"nova_senha" validate:"required,min=6"`
}

// CreateUsuarioRequest entrada para crear un usuario (password en texto, se hashea en el use case).
type CreateUsuarioRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	Perfil           string `json:"perfil" validate:"required,oneof=ADMIN USER"`
	EmailRecuperacao string `json:"email_recuperacao" validate:"omitempty,email"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Perfil           string `json:"perfil"`
	EmailRecuperacao string `json:"email_recuperacao"`
	TempPassword     bool   `json:"temp_password"`
}
