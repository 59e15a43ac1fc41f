package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

const loteCols = `id, medicamento_id, lote, quantidade_atual, quantidade_minima, quantidade_maxima,
	localizacao, data_entrada, data_validade, fornecedor, valor_unitario, valor_total,
	responsavel_entrada, status, observacoes, deleted_at, created_at, updated_at`

// LoteRepo implementação de LoteRepository sobre PostgreSQL (usável com pool ou tx).
type LoteRepo struct {
	q Querier
}

// NewLoteRepository constrói o adaptador de lotes. Passar pool ou tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

// Create persiste um novo lote.
func (r *LoteRepo) Create(lote *entity.LoteEstoque) error {
	query := `
		INSERT INTO medicamentos_estoque (` + loteCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		lote.ID, lote.MedicamentoID, lote.Lote, lote.QuantidadeAtual, lote.QuantidadeMinima,
		lote.QuantidadeMaxima, lote.Localizacao, lote.DataEntrada, lote.DataValidade,
		lote.Fornecedor, lote.ValorUnitario, lote.ValorTotal, lote.ResponsavelEntrada,
		lote.Status, lote.Observacoes, lote.DeletedAt, lote.CreatedAt, lote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByID obtém um lote por id, inclusive excluído (o caller decide).
func (r *LoteRepo) GetByID(id string) (*entity.LoteEstoque, error) {
	return r.scanOne(`SELECT ` + loteCols + ` FROM medicamentos_estoque WHERE id = $1`, id)
}

// GetForUpdate obtém o lote bloqueando a fila (SELECT FOR UPDATE).
// Serializa checagem-e-decremento entre baixas concorrentes no mesmo lote.
func (r *LoteRepo) GetForUpdate(id string) (*entity.LoteEstoque, error) {
	return r.scanOne(`SELECT `+loteCols+` FROM medicamentos_estoque WHERE id = $1 FOR UPDATE`, id)
}

// GetByMedicamentoELote busca pela combinação única medicamento+lote entre os não excluídos.
func (r *LoteRepo) GetByMedicamentoELote(medicamentoID, lote string) (*entity.LoteEstoque, error) {
	return r.scanOne(`
		SELECT `+loteCols+` FROM medicamentos_estoque
		WHERE medicamento_id = $1 AND lote = $2 AND deleted_at IS NULL`, medicamentoID, lote)
}

func (r *LoteRepo) scanOne(query string, args ...any) (*entity.LoteEstoque, error) {
	var l entity.LoteEstoque
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.MedicamentoID, &l.Lote, &l.QuantidadeAtual, &l.QuantidadeMinima,
		&l.QuantidadeMaxima, &l.Localizacao, &l.DataEntrada, &l.DataValidade,
		&l.Fornecedor, &l.ValorUnitario, &l.ValorTotal, &l.ResponsavelEntrada,
		&l.Status, &l.Observacoes, &l.DeletedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}

// Update grava o estado completo do lote (exceto id, deleted_at e created_at).
func (r *LoteRepo) Update(lote *entity.LoteEstoque) error {
	query := `
		UPDATE medicamentos_estoque
		SET lote = $2, quantidade_atual = $3, quantidade_minima = $4, quantidade_maxima = $5,
			localizacao = $6, data_validade = $7, fornecedor = $8, valor_unitario = $9,
			valor_total = $10, status = $11, observacoes = $12, updated_at = $13
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query,
		lote.ID, lote.Lote, lote.QuantidadeAtual, lote.QuantidadeMinima, lote.QuantidadeMaxima,
		lote.Localizacao, lote.DataValidade, lote.Fornecedor, lote.ValorUnitario,
		lote.ValorTotal, lote.Status, lote.Observacoes, lote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update lote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrLoteNotFound
	}
	return nil
}

// UpdateQuantidade grava a nova quantidade projetada do lote.
// O CHECK quantidade_atual >= 0 da base é a última barreira contra saldo negativo.
func (r *LoteRepo) UpdateQuantidade(id string, quantidade decimal.Decimal, quando time.Time) error {
	query := `
		UPDATE medicamentos_estoque SET quantidade_atual = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query, id, quantidade, quando)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update quantidade: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrLoteNotFound
	}
	return nil
}

// MarcarExcluido aplica o soft delete. Idempotência é responsabilidade do
// caso de uso (que checa deleted_at sob lock antes).
func (r *LoteRepo) MarcarExcluido(id string, quando time.Time) error {
	query := `
		UPDATE medicamentos_estoque SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query, id, quando)
	if err != nil {
		return fmt.Errorf("marcar excluido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrLoteNotFound
	}
	return nil
}

// ListAtivos lista lotes não excluídos com filtros opcionais.
// O WHERE dinâmico é montado com squirrel e o resultado escaneado com pgxscan.
func (r *LoteRepo) ListAtivos(filter repository.LoteFilter) ([]*entity.LoteEstoque, error) {
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(
			"e.id", "e.medicamento_id", "e.lote", "e.quantidade_atual", "e.quantidade_minima",
			"e.quantidade_maxima", "e.localizacao", "e.data_entrada", "e.data_validade",
			"e.fornecedor", "e.valor_unitario", "e.valor_total", "e.responsavel_entrada",
			"e.status", "e.observacoes", "e.deleted_at", "e.created_at", "e.updated_at",
		).
		From("medicamentos_estoque e").
		Where("e.deleted_at IS NULL")

	if filter.MedicamentoTexto != "" {
		q = q.Join("medicamentos m ON m.id = e.medicamento_id").
			Where(squirrel.Or{
				squirrel.ILike{"m.nome": "%" + filter.MedicamentoTexto + "%"},
				squirrel.ILike{"m.codigo": "%" + filter.MedicamentoTexto + "%"},
			})
	}
	if filter.Lote != "" {
		q = q.Where(squirrel.ILike{"e.lote": "%" + filter.Lote + "%"})
	}
	if filter.Fornecedor != "" {
		q = q.Where(squirrel.ILike{"e.fornecedor": "%" + filter.Fornecedor + "%"})
	}
	if filter.Responsavel != "" {
		q = q.Where(squirrel.ILike{"e.responsavel_entrada": "%" + filter.Responsavel + "%"})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"e.status": filter.Status})
	}
	if filter.EntradaDe != nil {
		q = q.Where(squirrel.GtOrEq{"e.data_entrada": *filter.EntradaDe})
	}
	if filter.EntradaAte != nil {
		q = q.Where(squirrel.LtOrEq{"e.data_entrada": *filter.EntradaAte})
	}
	if filter.ValidadeDe != nil {
		q = q.Where(squirrel.GtOrEq{"e.data_validade": *filter.ValidadeDe})
	}
	if filter.ValidadeAte != nil {
		q = q.Where(squirrel.LtOrEq{"e.data_validade": *filter.ValidadeAte})
	}
	q = q.OrderBy("e.data_entrada DESC", "e.created_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list lotes: %w", err)
	}

	var lotes []*entity.LoteEstoque
	if err := pgxscan.Select(context.Background(), r.q, &lotes, sql, args...); err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	return lotes, nil
}
