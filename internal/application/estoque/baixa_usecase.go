package estoque

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/repository"
	"github.com/gfarias-dev/farmacia-estoque-api/pkg/decimalbr"
)

// AtorSistema é usado quando a baixa não informa o executor (rotinas internas).
const AtorSistema = "sistema"

// BaixaUseCase executa a saída guardada de estoque: valida, decrementa a
// quantidade do lote e lança o movimento no diário como uma unidade atômica
// (transação com SELECT FOR UPDATE na fila do lote).
type BaixaUseCase struct {
	txRunner        TxRunner
	medicamentoRepo repository.MedicamentoRepository
	publisher       EventPublisher
}

// NewBaixaUseCase constrói o caso de uso. publisher pode ser nil.
func NewBaixaUseCase(txRunner TxRunner, medicamentoRepo repository.MedicamentoRepository, publisher EventPublisher) *BaixaUseCase {
	return &BaixaUseCase{txRunner: txRunner, medicamentoRepo: medicamentoRepo, publisher: publisher}
}

// BaixaInput entrada da baixa. Quantidade é o texto digitado pelo usuário
// (vírgula ou ponto); RequestID é a chave de idempotência opcional.
type BaixaInput struct {
	LoteID       string
	Quantidade   string
	Motivo       string
	ExecutadoPor string
	RequestID    string
}

// BaixaResultado fotografia antes/depois devolvida ao caller.
type BaixaResultado struct {
	Medicamento        string
	Lote               string
	QuantidadeRemovida decimal.Decimal
	QuantidadeAnterior decimal.Decimal
	QuantidadeAtual    decimal.Decimal
	AbaixoDoMinimo     bool
}

// Executar roda a baixa. Validações de entrada acontecem antes de tocar o
// armazenamento; dentro da transação a fila do lote fica bloqueada entre a
// checagem de saldo e o decremento, então duas baixas concorrentes sobre o
// mesmo lote nunca passam juntas pela checagem.
func (uc *BaixaUseCase) Executar(ctx context.Context, input BaixaInput) (*BaixaResultado, error) {
	if strings.TrimSpace(input.LoteID) == "" {
		return nil, domain.ErrInvalidInput
	}
	quantidade, err := decimalbr.Parse(input.Quantidade)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !quantidade.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	motivo := strings.TrimSpace(input.Motivo)
	if motivo == "" {
		return nil, domain.ErrInvalidInput
	}
	executadoPor := strings.TrimSpace(input.ExecutadoPor)
	if executadoPor == "" {
		executadoPor = AtorSistema
	}
	requestID := strings.TrimSpace(input.RequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	now := time.Now()
	var resultado *BaixaResultado
	var movimento *entity.Movimento
	var loteAfetado *entity.LoteEstoque

	err = uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		movRepo repository.MovimentoRepository,
		_ repository.ExclusaoRepository,
	) error {
		// Bloqueia a fila do lote até o commit
		lote, err := loteRepo.GetForUpdate(input.LoteID)
		if err != nil {
			return err
		}
		if lote == nil {
			return domain.ErrLoteNotFound
		}
		if lote.Excluido() {
			return domain.ErrLoteExcluido
		}

		// Idempotência: uma retentativa após timeout não pode debitar duas vezes
		if existente, err := movRepo.GetByRequestID(requestID); err != nil {
			return err
		} else if existente != nil {
			return domain.ErrRequisicaoDuplicada
		}

		if quantidade.GreaterThan(lote.QuantidadeAtual) {
			return &domain.EstoqueInsuficienteError{
				Solicitada: quantidade,
				Disponivel: lote.QuantidadeAtual,
			}
		}

		anterior := lote.QuantidadeAtual
		atual := anterior.Sub(quantidade)
		if err := loteRepo.UpdateQuantidade(lote.ID, atual, now); err != nil {
			return err
		}

		mov := &entity.Movimento{
			ID:           uuid.New().String(),
			LoteID:       lote.ID,
			Tipo:         entity.MovimentoSaida,
			Quantidade:   quantidade,
			Motivo:       motivo,
			ExecutadoEm:  now,
			ExecutadoPor: executadoPor,
			RequestID:    &requestID,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		nomeMedicamento := lote.MedicamentoID
		if med, err := uc.medicamentoRepo.GetByID(lote.MedicamentoID); err == nil && med != nil {
			nomeMedicamento = med.Nome
		}

		lote.QuantidadeAtual = atual
		movimento = mov
		loteAfetado = lote
		resultado = &BaixaResultado{
			Medicamento:        nomeMedicamento,
			Lote:               lote.Lote,
			QuantidadeRemovida: quantidade,
			QuantidadeAnterior: anterior,
			QuantidadeAtual:    atual,
			AbaixoDoMinimo:     atual.LessThanOrEqual(lote.QuantidadeMinima),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Eventos só depois do commit; falha de publicação não desfaz a baixa
	if uc.publisher != nil {
		uc.publisher.MovimentoRegistrado(ctx, movimento, resultado.Medicamento)
		if resultado.AbaixoDoMinimo {
			uc.publisher.EstoqueAbaixoDoMinimo(ctx, loteAfetado, resultado.Medicamento)
		}
	}
	return resultado, nil
}
