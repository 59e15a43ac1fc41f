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
)

// ExclusaoUseCase exclui um lote logicamente: marca deleted_at, grava o
// registro de auditoria e nada mais. Exclusão física não existe no fluxo —
// o histórico do lote precisa continuar reconstruível.
type ExclusaoUseCase struct {
	txRunner        TxRunner
	medicamentoRepo repository.MedicamentoRepository
	publisher       EventPublisher
}

// NewExclusaoUseCase constrói o caso de uso. publisher pode ser nil.
func NewExclusaoUseCase(txRunner TxRunner, medicamentoRepo repository.MedicamentoRepository, publisher EventPublisher) *ExclusaoUseCase {
	return &ExclusaoUseCase{txRunner: txRunner, medicamentoRepo: medicamentoRepo, publisher: publisher}
}

// ExclusaoInput entrada da exclusão. Motivo é obrigatório.
type ExclusaoInput struct {
	LoteID       string
	Motivo       string
	ExecutadoPor string
}

// ExclusaoResultado resumo devolvido ao caller.
type ExclusaoResultado struct {
	Medicamento        string
	Lote               string
	QuantidadeExcluida decimal.Decimal
	Motivo             string
	ExecutadoPor       string
}

// Executar roda a exclusão lógica. Depois dela o lote some das listagens
// ativas e passa a recusar qualquer baixa ou atualização.
func (uc *ExclusaoUseCase) Executar(ctx context.Context, input ExclusaoInput) (*ExclusaoResultado, error) {
	if strings.TrimSpace(input.LoteID) == "" {
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

	now := time.Now()
	var resultado *ExclusaoResultado
	var auditoria *entity.LoteExclusao

	err := uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		_ repository.MovimentoRepository,
		exclusaoRepo repository.ExclusaoRepository,
	) error {
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

		if err := loteRepo.MarcarExcluido(lote.ID, now); err != nil {
			return err
		}

		nomeMedicamento := lote.MedicamentoID
		if med, err := uc.medicamentoRepo.GetByID(lote.MedicamentoID); err == nil && med != nil {
			nomeMedicamento = med.Nome
		}

		exclusao := &entity.LoteExclusao{
			ID:                  uuid.New().String(),
			LoteID:              lote.ID,
			MedicamentoNome:     nomeMedicamento,
			Lote:                lote.Lote,
			QuantidadeNoMomento: lote.QuantidadeAtual,
			Motivo:              motivo,
			ExecutadoPor:        executadoPor,
			ExcluidoEm:          now,
		}
		if err := exclusaoRepo.Create(exclusao); err != nil {
			return err
		}

		auditoria = exclusao
		resultado = &ExclusaoResultado{
			Medicamento:        nomeMedicamento,
			Lote:               lote.Lote,
			QuantidadeExcluida: lote.QuantidadeAtual,
			Motivo:             motivo,
			ExecutadoPor:       executadoPor,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		uc.publisher.LoteExcluido(ctx, auditoria)
	}
	return resultado, nil
}
