package entity

import "time"

// Papéis de usuário.
const (
	PapelAdmin        = "admin"
	PapelFarmaceutico = "farmaceutico"
	PapelAtendente    = "atendente"
)

// Usuario representa um operador autenticado do sistema (usuarios).
type Usuario struct {
	ID           string
	Nome         string
	Email        string
	SenhaHash    string
	Papel        string // admin | farmaceutico | atendente
	UnidadeSaude string // unidade de saúde à qual o usuário pertence
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
