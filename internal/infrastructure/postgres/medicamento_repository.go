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

var _ repository.MedicamentoRepository = (*MedicamentoRepo)(nil)

// MedicamentoRepo implementação de MedicamentoRepository sobre PostgreSQL.
type MedicamentoRepo struct {
	q Querier
}

// NewMedicamentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMedicamentoRepository(q Querier) *MedicamentoRepo {
	return &MedicamentoRepo{q: q}
}

// Create persiste um medicamento.
func (r *MedicamentoRepo) Create(m *entity.Medicamento) error {
	query := `
		INSERT INTO medicamentos (id, nome, principio_ativo, apresentacao, codigo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Nome, m.PrincipioAtivo, m.Apresentacao, m.Codigo, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medicamento: %w", err)
	}
	return nil
}

// GetByID obtém um medicamento por id.
func (r *MedicamentoRepo) GetByID(id string) (*entity.Medicamento, error) {
	query := `
		SELECT id, nome, principio_ativo, apresentacao, codigo, created_at, updated_at
		FROM medicamentos WHERE id = $1`
	var m entity.Medicamento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Nome, &m.PrincipioAtivo, &m.Apresentacao, &m.Codigo, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicamento: %w", err)
	}
	return &m, nil
}

// List busca medicamentos por substring de nome ou código.
func (r *MedicamentoRepo) List(texto string, limit, offset int) ([]*entity.Medicamento, error) {
	query := `
		SELECT id, nome, principio_ativo, apresentacao, codigo, created_at, updated_at
		FROM medicamentos`
	args := []any{}
	if texto != "" {
		query += ` WHERE nome ILIKE $1 OR codigo ILIKE $1`
		args = append(args, "%"+texto+"%")
	}
	query += fmt.Sprintf(" ORDER BY nome LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list medicamentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Medicamento
	for rows.Next() {
		var m entity.Medicamento
		if err := rows.Scan(&m.ID, &m.Nome, &m.PrincipioAtivo, &m.Apresentacao, &m.Codigo, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan medicamento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
