package postgres

import (
	"context"
	"fmt"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/repository"
)

var _ repository.ExclusaoRepository = (*ExclusaoRepo)(nil)

// ExclusaoRepo registro de auditoria de exclusões (lotes_exclusoes, insert-only).
type ExclusaoRepo struct {
	q Querier
}

// NewExclusaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewExclusaoRepository(q Querier) *ExclusaoRepo {
	return &ExclusaoRepo{q: q}
}

// Create persiste o registro de exclusão.
func (r *ExclusaoRepo) Create(e *entity.LoteExclusao) error {
	query := `
		INSERT INTO lotes_exclusoes (id, lote_id, medicamento_nome, lote, quantidade_no_momento, motivo, executado_por, excluido_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.LoteID, e.MedicamentoNome, e.Lote, e.QuantidadeNoMomento,
		e.Motivo, e.ExecutadoPor, e.ExcluidoEm,
	)
	if err != nil {
		return fmt.Errorf("insert exclusao: %w", err)
	}
	return nil
}

// ListByLote devolve o histórico de exclusões do lote (em geral zero ou um).
func (r *ExclusaoRepo) ListByLote(loteID string) ([]*entity.LoteExclusao, error) {
	query := `
		SELECT id, lote_id, medicamento_nome, lote, quantidade_no_momento, motivo, executado_por, excluido_em
		FROM lotes_exclusoes WHERE lote_id = $1 ORDER BY excluido_em DESC`
	rows, err := r.q.Query(context.Background(), query, loteID)
	if err != nil {
		return nil, fmt.Errorf("list exclusoes: %w", err)
	}
	defer rows.Close()

	var list []*entity.LoteExclusao
	for rows.Next() {
		var e entity.LoteExclusao
		if err := rows.Scan(&e.ID, &e.LoteID, &e.MedicamentoNome, &e.Lote,
			&e.QuantidadeNoMomento, &e.Motivo, &e.ExecutadoPor, &e.ExcluidoEm); err != nil {
			return nil, fmt.Errorf("scan exclusao: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
