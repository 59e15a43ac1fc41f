package repository

import "github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"

// MovimentoRepository porta do diário de movimentos (append-only).
// Não existe Update nem Delete: um movimento gravado é definitivo.
type MovimentoRepository interface {
	Create(movimento *entity.Movimento) error
	// ListByLote retorna os movimentos do lote ordenados por executado_em
	// decrescente; o índice 0 é o "último movimento" (os callers dependem disso).
	ListByLote(loteID string) ([]*entity.Movimento, error)
	// GetByRequestID busca um movimento pela chave de idempotência.
	// Retorna (nil, nil) quando não existe.
	GetByRequestID(requestID string) (*entity.Movimento, error)
}
