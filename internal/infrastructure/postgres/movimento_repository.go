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

var _ repository.MovimentoRepository = (*MovimentoRepo)(nil)

// MovimentoRepo implementação do diário de movimentos sobre PostgreSQL.
// Só existe INSERT e SELECT: o diário é append-only por construção.
type MovimentoRepo struct {
	q Querier
}

// NewMovimentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentoRepository(q Querier) *MovimentoRepo {
	return &MovimentoRepo{q: q}
}

// Create persiste um movimento. Violação do índice único de request_id
// vira ErrRequisicaoDuplicada (retentativa de baixa já aplicada).
func (r *MovimentoRepo) Create(movimento *entity.Movimento) error {
	query := `
		INSERT INTO estoque_movimentos (id, lote_id, tipo, quantidade, motivo, executado_em, executado_por, request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movimento.ID, movimento.LoteID, movimento.Tipo, movimento.Quantidade,
		movimento.Motivo, movimento.ExecutadoEm, movimento.ExecutadoPor, movimento.RequestID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRequisicaoDuplicada
		}
		return fmt.Errorf("insert movimento: %w", err)
	}
	return nil
}

// ListByLote lista o diário do lote, mais recente primeiro.
// A ordenação DESC é contrato: os callers assumem que o índice 0 é o último movimento.
func (r *MovimentoRepo) ListByLote(loteID string) ([]*entity.Movimento, error) {
	query := `
		SELECT id, lote_id, tipo, quantidade, motivo, executado_em, executado_por, request_id
		FROM estoque_movimentos WHERE lote_id = $1
		ORDER BY executado_em DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, loteID)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movimento
	for rows.Next() {
		var m entity.Movimento
		if err := rows.Scan(&m.ID, &m.LoteID, &m.Tipo, &m.Quantidade,
			&m.Motivo, &m.ExecutadoEm, &m.ExecutadoPor, &m.RequestID); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// GetByRequestID busca um movimento pela chave de idempotência.
func (r *MovimentoRepo) GetByRequestID(requestID string) (*entity.Movimento, error) {
	query := `
		SELECT id, lote_id, tipo, quantidade, motivo, executado_em, executado_por, request_id
		FROM estoque_movimentos WHERE request_id = $1`
	var m entity.Movimento
	err := r.q.QueryRow(context.Background(), query, requestID).Scan(
		&m.ID, &m.LoteID, &m.Tipo, &m.Quantidade,
		&m.Motivo, &m.ExecutadoEm, &m.ExecutadoPor, &m.RequestID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimento por request_id: %w", err)
	}
	return &m, nil
}
