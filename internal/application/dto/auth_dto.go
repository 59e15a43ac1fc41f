package dto

// RegisterRequest body de POST /api/auth/register.
type RegisterRequest struct {
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	Senha        string `json:"senha"`
	Papel        string `json:"papel,omitempty"`
	UnidadeSaude string `json:"unidade_saude,omitempty"`
}

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// AuthResponse token emitido após login/registro.
type AuthResponse struct {
	Token   string `json:"token"`
	UserID  string `json:"user_id"`
	Nome    string `json:"nome"`
	Papel   string `json:"papel"`
	Unidade string `json:"unidade,omitempty"`
}
