package repository

import "github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"

// ExclusaoRepository porta do registro de auditoria de exclusões de lote
// (insert-only, como o diário de movimentos).
type ExclusaoRepository interface {
	Create(e *entity.LoteExclusao) error
	ListByLote(loteID string) ([]*entity.LoteExclusao, error)
}
