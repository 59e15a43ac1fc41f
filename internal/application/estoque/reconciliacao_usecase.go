package estoque

import (
	"context"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
	domainestoque "github.com/gfarias-dev/farmacia-estoque-api/internal/domain/estoque"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/repository"
)

// ReconciliacaoUseCase deriva totais e saldo do diário de um lote.
// Somente leitura: nunca corrige a quantidade projetada do lote.
// Funciona também para lotes excluídos (trilha de auditoria).
type ReconciliacaoUseCase struct {
	loteRepo repository.LoteRepository
	movRepo  repository.MovimentoRepository
}

// NewReconciliacaoUseCase constrói o caso de uso.
func NewReconciliacaoUseCase(loteRepo repository.LoteRepository, movRepo repository.MovimentoRepository) *ReconciliacaoUseCase {
	return &ReconciliacaoUseCase{loteRepo: loteRepo, movRepo: movRepo}
}

// Resumo soma os movimentos do lote por tipo e devolve o agregado.
func (uc *ReconciliacaoUseCase) Resumo(ctx context.Context, loteID string) (*domainestoque.ResumoMovimentos, error) {
	lote, err := uc.loteRepo.GetByID(loteID)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrLoteNotFound
	}
	movimentos, err := uc.movRepo.ListByLote(loteID)
	if err != nil {
		return nil, err
	}
	resumo := domainestoque.Resumir(movimentos)
	return &resumo, nil
}

// ListarMovimentos devolve o diário do lote, mais recente primeiro.
func (uc *ReconciliacaoUseCase) ListarMovimentos(ctx context.Context, loteID string) ([]*entity.Movimento, error) {
	lote, err := uc.loteRepo.GetByID(loteID)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrLoteNotFound
	}
	return uc.movRepo.ListByLote(loteID)
}
