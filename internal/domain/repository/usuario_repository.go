package repository

import "github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"

// UsuarioRepository porta de persistência de usuários.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
}
