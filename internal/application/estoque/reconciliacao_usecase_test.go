package estoque_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/estoque"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
)

func novaReconciliacaoUC(store *fakeStore) *estoque.ReconciliacaoUseCase {
	return estoque.NewReconciliacaoUseCase(
		&fakeLoteRepo{store: store},
		&fakeMovimentoRepo{store: store},
	)
}

func seedMovimento(store *fakeStore, loteID, tipo, quantidade string, executadoEm time.Time) {
	store.movimentos = append(store.movimentos, &entity.Movimento{
		ID:          "mov-" + tipo + "-" + executadoEm.Format("150405"),
		LoteID:      loteID,
		Tipo:        tipo,
		Quantidade:  decimal.RequireFromString(quantidade),
		ExecutadoEm: executadoEm,
	})
}

func TestResumo_SaldoDoDiario(t *testing.T) {
	store := newFakeStore()
	seedLote(store, "lote-1", "70", "0")
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	seedMovimento(store, "lote-1", entity.MovimentoEntrada, "100", base)
	seedMovimento(store, "lote-1", entity.MovimentoSaida, "30", base.Add(time.Hour))
	uc := novaReconciliacaoUC(store)

	resumo, err := uc.Resumo(context.Background(), "lote-1")
	require.NoError(t, err)

	assert.True(t, resumo.Saldo.Equal(decimal.NewFromInt(70)))
	require.NotNil(t, resumo.UltimoMovimento)
	assert.Equal(t, entity.MovimentoSaida, resumo.UltimoMovimento.Tipo)
}

func TestResumo_LoteInexistente(t *testing.T) {
	uc := novaReconciliacaoUC(newFakeStore())

	_, err := uc.Resumo(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrLoteNotFound)
}

func TestResumo_FuncionaParaLoteExcluido(t *testing.T) {
	// Trilha de auditoria: o diário de um lote excluído continua consultável
	store := newFakeStore()
	lote := seedLote(store, "lote-1", "0", "0")
	quando := time.Now()
	lote.DeletedAt = &quando
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	seedMovimento(store, "lote-1", entity.MovimentoEntrada, "10", base)
	uc := novaReconciliacaoUC(store)

	resumo, err := uc.Resumo(context.Background(), "lote-1")
	require.NoError(t, err)
	assert.True(t, resumo.TotalEntradas.Equal(decimal.NewFromInt(10)))
}

func TestListarMovimentos_MaisRecentePrimeiro(t *testing.T) {
	store := newFakeStore()
	seedLote(store, "lote-1", "70", "0")
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	seedMovimento(store, "lote-1", entity.MovimentoEntrada, "100", base)
	seedMovimento(store, "lote-1", entity.MovimentoSaida, "30", base.Add(time.Hour))
	seedMovimento(store, "lote-1", entity.MovimentoSaida, "10", base.Add(2*time.Hour))
	// Movimento de outro lote não pode vazar
	seedLote(store, "lote-2", "5", "0")
	seedMovimento(store, "lote-2", entity.MovimentoEntrada, "5", base)
	uc := novaReconciliacaoUC(store)

	movimentos, err := uc.ListarMovimentos(context.Background(), "lote-1")
	require.NoError(t, err)

	require.Len(t, movimentos, 3)
	assert.True(t, movimentos[0].Quantidade.Equal(decimal.NewFromInt(10)),
		"índice 0 deve ser o movimento mais recente")
	assert.True(t, movimentos[2].Quantidade.Equal(decimal.NewFromInt(100)))
}

func TestListarMovimentos_LoteInexistente(t *testing.T) {
	uc := novaReconciliacaoUC(newFakeStore())

	_, err := uc.ListarMovimentos(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrLoteNotFound)
}
