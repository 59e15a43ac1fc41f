package estoque

import (
	"context"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados àquela transação. Garante o tudo-ou-nada da baixa:
// o decremento do lote e o lançamento no diário só ficam visíveis juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		loteRepo repository.LoteRepository,
		movRepo repository.MovimentoRepository,
		exclusaoRepo repository.ExclusaoRepository,
	) error) error
}

// EventPublisher publica eventos de estoque após o commit (movimento
// registrado, estoque abaixo do mínimo, lote excluído). As implementações
// não devem falhar a operação já confirmada; erro de publicação é apenas logado.
type EventPublisher interface {
	MovimentoRegistrado(ctx context.Context, mov *entity.Movimento, medicamento string)
	EstoqueAbaixoDoMinimo(ctx context.Context, lote *entity.LoteEstoque, medicamento string)
	LoteExcluido(ctx context.Context, exclusao *entity.LoteExclusao)
}
