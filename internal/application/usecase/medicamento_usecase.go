package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/repository"
)

// MedicamentoUseCase cadastro de medicamentos (suporte ao estoque por lote).
type MedicamentoUseCase struct {
	repo repository.MedicamentoRepository
}

// NewMedicamentoUseCase constrói o caso de uso.
func NewMedicamentoUseCase(repo repository.MedicamentoRepository) *MedicamentoUseCase {
	return &MedicamentoUseCase{repo: repo}
}

// Criar cadastra um medicamento. Nome é obrigatório.
func (uc *MedicamentoUseCase) Criar(ctx context.Context, nome, principioAtivo, apresentacao, codigo string) (*entity.Medicamento, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &entity.Medicamento{
		ID:             uuid.New().String(),
		Nome:           nome,
		PrincipioAtivo: strings.TrimSpace(principioAtivo),
		Apresentacao:   strings.TrimSpace(apresentacao),
		Codigo:         strings.TrimSpace(codigo),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ObterPorID busca um medicamento pelo id.
func (uc *MedicamentoUseCase) ObterPorID(ctx context.Context, id string) (*entity.Medicamento, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrMedicamentoNotFound
	}
	return m, nil
}

// Listar busca medicamentos por substring do nome ou código.
func (uc *MedicamentoUseCase) Listar(ctx context.Context, texto string, limit, offset int) ([]*entity.Medicamento, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.List(strings.TrimSpace(texto), limit, offset)
}
