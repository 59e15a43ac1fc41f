package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um usuário.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nome, email, senha_hash, papel, unidade_saude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nome, u.Email, u.SenhaHash, u.Papel, u.UnidadeSaude, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por id.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.scanOne(`
		SELECT id, nome, email, senha_hash, papel, unidade_saude, created_at, updated_at
		FROM usuarios WHERE id = $1`, id)
}

// GetByEmail obtém um usuário pelo e-mail.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.scanOne(`
		SELECT id, nome, email, senha_hash, papel, unidade_saude, created_at, updated_at
		FROM usuarios WHERE email = $1`, email)
}

func (r *UsuarioRepo) scanOne(query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Papel, &u.UnidadeSaude, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
