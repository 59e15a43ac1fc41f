package estoque_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/estoque"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain"
)

func novaExclusaoUC(store *fakeStore, publisher *fakePublisher) *estoque.ExclusaoUseCase {
	var p estoque.EventPublisher
	if publisher != nil {
		p = publisher
	}
	return estoque.NewExclusaoUseCase(
		&fakeTxRunner{store: store},
		&fakeMedicamentoRepo{store: store},
		p,
	)
}

func TestExclusao_MarcaEAudita(t *testing.T) {
	store := newFakeStore()
	seedLote(store, "lote-1", "42.5", "0")
	publisher := &fakePublisher{}
	uc := novaExclusaoUC(store, publisher)

	resultado, err := uc.Executar(context.Background(), estoque.ExclusaoInput{
		LoteID:       "lote-1",
		Motivo:       "lote vencido em inspeção",
		ExecutadoPor: "user-7",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dipirona 500mg", resultado.Medicamento)
	assert.True(t, resultado.QuantidadeExcluida.Equal(decimal.RequireFromString("42.5")))
	assert.Equal(t, "lote vencido em inspeção", resultado.Motivo)
	assert.Equal(t, "user-7", resultado.ExecutadoPor)

	// O lote continua na base, marcado; a fotografia vai para a auditoria
	require.True(t, store.lotes["lote-1"].Excluido())
	require.Len(t, store.exclusoes, 1)
	auditoria := store.exclusoes[0]
	assert.Equal(t, "lote-1", auditoria.LoteID)
	assert.True(t, auditoria.QuantidadeNoMomento.Equal(decimal.RequireFromString("42.5")))
	assert.Equal(t, "lote vencido em inspeção", auditoria.Motivo)
	assert.Equal(t, "user-7", auditoria.ExecutadoPor)
	assert.False(t, auditoria.ExcluidoEm.IsZero())

	require.Len(t, publisher.exclusoes, 1, "evento de exclusão publicado após o commit")
}

func TestExclusao_MotivoObrigatorio(t *testing.T) {
	store := newFakeStore()
	seedLote(store, "lote-1", "10", "0")
	uc := novaExclusaoUC(store, nil)

	_, err := uc.Executar(context.Background(), estoque.ExclusaoInput{
		LoteID: "lote-1",
		Motivo: "   ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, store.lotes["lote-1"].Excluido())
	assert.Empty(t, store.exclusoes)
}

func TestExclusao_LoteInexistente(t *testing.T) {
	uc := novaExclusaoUC(newFakeStore(), nil)

	_, err := uc.Executar(context.Background(), estoque.ExclusaoInput{
		LoteID: "nao-existe",
		Motivo: "qualquer",
	})
	assert.ErrorIs(t, err, domain.ErrLoteNotFound)
}

func TestExclusao_JaExcluidoNaoExcluiDeNovo(t *testing.T) {
	store := newFakeStore()
	lote := seedLote(store, "lote-1", "10", "0")
	quando := time.Now()
	lote.DeletedAt = &quando
	uc := novaExclusaoUC(store, nil)

	_, err := uc.Executar(context.Background(), estoque.ExclusaoInput{
		LoteID: "lote-1",
		Motivo: "de novo",
	})
	assert.ErrorIs(t, err, domain.ErrLoteExcluido)
	assert.Empty(t, store.exclusoes, "exclusão repetida não pode gerar segunda auditoria")
}

func TestExclusao_FalhaNaAuditoriaDesfazAMarcacao(t *testing.T) {
	store := newFakeStore()
	seedLote(store, "lote-1", "10", "0")
	uc := estoque.NewExclusaoUseCase(
		&fakeTxRunner{store: store, failExclusaoCreate: errors.New("disco cheio")},
		&fakeMedicamentoRepo{store: store},
		nil,
	)

	_, err := uc.Executar(context.Background(), estoque.ExclusaoInput{
		LoteID: "lote-1",
		Motivo: "lote danificado",
	})
	require.Error(t, err)

	assert.False(t, store.lotes["lote-1"].Excluido(),
		"sem registro de auditoria a marcação não pode ficar visível")
}

func TestExclusao_SemExecutorRegistraAtorSistema(t *testing.T) {
	store := newFakeStore()
	seedLote(store, "lote-1", "10", "0")
	uc := novaExclusaoUC(store, nil)

	resultado, err := uc.Executar(context.Background(), estoque.ExclusaoInput{
		LoteID: "lote-1",
		Motivo: "expurgo automático",
	})
	require.NoError(t, err)
	assert.Equal(t, estoque.AtorSistema, resultado.ExecutadoPor)
	require.Len(t, store.exclusoes, 1)
	assert.Equal(t, estoque.AtorSistema, store.exclusoes[0].ExecutadoPor)
}
