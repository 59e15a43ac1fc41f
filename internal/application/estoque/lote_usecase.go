package estoque

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/dto"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/repository"
	"github.com/gfarias-dev/farmacia-estoque-api/pkg/decimalbr"
)

const formatoData = "2006-01-02"

// LoteUseCase cobre o ciclo de vida regular do lote: entrada (create),
// edição (update com validação sobre o estado mesclado) e listagem ativa.
// A saída guardada e a exclusão lógica têm casos de uso próprios.
type LoteUseCase struct {
	txRunner        TxRunner
	loteRepo        repository.LoteRepository
	medicamentoRepo repository.MedicamentoRepository
}

// NewLoteUseCase constrói o caso de uso.
func NewLoteUseCase(txRunner TxRunner, loteRepo repository.LoteRepository, medicamentoRepo repository.MedicamentoRepository) *LoteUseCase {
	return &LoteUseCase{txRunner: txRunner, loteRepo: loteRepo, medicamentoRepo: medicamentoRepo}
}

// Criar registra a entrada de um lote. Quando a quantidade inicial é
// positiva, o movimento ENTRADA correspondente é lançado na mesma
// transação, então o saldo do diário confere desde a primeira linha.
func (uc *LoteUseCase) Criar(ctx context.Context, in dto.CriarLoteRequest, executadoPor string) (*entity.LoteEstoque, error) {
	quantidade, err := decimalbr.Parse(in.Quantidade)
	if err != nil || quantidade.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	minima := decimal.Zero
	if strings.TrimSpace(in.QuantidadeMinima) != "" {
		if minima, err = decimalbr.Parse(in.QuantidadeMinima); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	var maxima *decimal.Decimal
	if strings.TrimSpace(in.QuantidadeMaxima) != "" {
		m, err := decimalbr.Parse(in.QuantidadeMaxima)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		maxima = &m
	}
	dataEntrada, err := time.Parse(formatoData, in.DataEntrada)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var dataValidade *time.Time
	if strings.TrimSpace(in.DataValidade) != "" {
		v, err := time.Parse(formatoData, in.DataValidade)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dataValidade = &v
	}
	var valorUnitario, valorTotal *decimal.Decimal
	if strings.TrimSpace(in.ValorUnitario) != "" {
		vu, err := decimalbr.Parse(in.ValorUnitario)
		if err != nil || vu.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		valorUnitario = &vu
		vt := vu.Mul(quantidade)
		valorTotal = &vt
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = entity.StatusAtivo
	}

	med, err := uc.medicamentoRepo.GetByID(strings.TrimSpace(in.MedicamentoID))
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrMedicamentoNotFound
	}

	now := time.Now()
	lote := &entity.LoteEstoque{
		ID:                 uuid.New().String(),
		MedicamentoID:      med.ID,
		Lote:               strings.TrimSpace(in.Lote),
		QuantidadeAtual:    quantidade,
		QuantidadeMinima:   minima,
		QuantidadeMaxima:   maxima,
		Localizacao:        strings.TrimSpace(in.Localizacao),
		DataEntrada:        dataEntrada,
		DataValidade:       dataValidade,
		Fornecedor:         strings.TrimSpace(in.Fornecedor),
		ValorUnitario:      valorUnitario,
		ValorTotal:         valorTotal,
		ResponsavelEntrada: strings.TrimSpace(in.ResponsavelEntrada),
		Status:             status,
		Observacoes:        strings.TrimSpace(in.Observacoes),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := lote.Validar(); err != nil {
		return nil, err
	}

	// Unicidade medicamento+lote entre os não excluídos (o índice único da
	// base é a barreira definitiva; esta checagem dá mensagem melhor)
	existente, err := uc.loteRepo.GetByMedicamentoELote(lote.MedicamentoID, lote.Lote)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	if strings.TrimSpace(executadoPor) == "" {
		executadoPor = lote.ResponsavelEntrada
	}

	err = uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		movRepo repository.MovimentoRepository,
		_ repository.ExclusaoRepository,
	) error {
		if err := loteRepo.Create(lote); err != nil {
			return err
		}
		if !quantidade.GreaterThan(decimal.Zero) {
			return nil
		}
		return movRepo.Create(&entity.Movimento{
			ID:           uuid.New().String(),
			LoteID:       lote.ID,
			Tipo:         entity.MovimentoEntrada,
			Quantidade:   quantidade,
			Motivo:       "entrada inicial do lote",
			ExecutadoEm:  now,
			ExecutadoPor: executadoPor,
		})
	})
	if err != nil {
		return nil, err
	}
	return lote, nil
}

// Atualizar aplica um patch parcial e revalida os invariantes sobre o
// resultado mesclado (não apenas sobre os campos enviados). Lotes excluídos
// são imutáveis.
func (uc *LoteUseCase) Atualizar(ctx context.Context, loteID string, in dto.AtualizarLoteRequest) (*entity.LoteEstoque, error) {
	lote, err := uc.loteRepo.GetByID(loteID)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrLoteNotFound
	}
	if lote.Excluido() {
		return nil, domain.ErrLoteExcluido
	}

	loteAnterior := lote.Lote
	if in.Lote != nil {
		lote.Lote = strings.TrimSpace(*in.Lote)
	}
	if in.Quantidade != nil {
		q, err := decimalbr.Parse(*in.Quantidade)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		lote.QuantidadeAtual = q
	}
	if in.QuantidadeMinima != nil {
		q, err := decimalbr.Parse(*in.QuantidadeMinima)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		lote.QuantidadeMinima = q
	}
	if in.QuantidadeMaxima != nil {
		if strings.TrimSpace(*in.QuantidadeMaxima) == "" {
			lote.QuantidadeMaxima = nil
		} else {
			q, err := decimalbr.Parse(*in.QuantidadeMaxima)
			if err != nil {
				return nil, domain.ErrInvalidInput
			}
			lote.QuantidadeMaxima = &q
		}
	}
	if in.Localizacao != nil {
		lote.Localizacao = strings.TrimSpace(*in.Localizacao)
	}
	if in.DataValidade != nil {
		if strings.TrimSpace(*in.DataValidade) == "" {
			lote.DataValidade = nil
		} else {
			v, err := time.Parse(formatoData, *in.DataValidade)
			if err != nil {
				return nil, domain.ErrInvalidInput
			}
			lote.DataValidade = &v
		}
	}
	if in.Fornecedor != nil {
		lote.Fornecedor = strings.TrimSpace(*in.Fornecedor)
	}
	if in.ValorUnitario != nil {
		vu, err := decimalbr.Parse(*in.ValorUnitario)
		if err != nil || vu.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lote.ValorUnitario = &vu
		vt := vu.Mul(lote.QuantidadeAtual)
		lote.ValorTotal = &vt
	}
	if in.Status != nil {
		lote.Status = strings.TrimSpace(*in.Status)
	}
	if in.Observacoes != nil {
		lote.Observacoes = strings.TrimSpace(*in.Observacoes)
	}
	lote.UpdatedAt = time.Now()

	if err := lote.Validar(); err != nil {
		return nil, err
	}

	if lote.Lote != loteAnterior {
		existente, err := uc.loteRepo.GetByMedicamentoELote(lote.MedicamentoID, lote.Lote)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != lote.ID {
			return nil, domain.ErrDuplicate
		}
	}

	if err := uc.loteRepo.Update(lote); err != nil {
		return nil, err
	}
	return lote, nil
}

// ObterPorID devolve o lote (inclusive excluído, para telas de auditoria).
func (uc *LoteUseCase) ObterPorID(ctx context.Context, loteID string) (*entity.LoteEstoque, error) {
	lote, err := uc.loteRepo.GetByID(loteID)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrLoteNotFound
	}
	return lote, nil
}

// ListarAtivos lista lotes não excluídos aplicando os filtros da request.
func (uc *LoteUseCase) ListarAtivos(ctx context.Context, in dto.ListarLotesRequest) ([]*entity.LoteEstoque, error) {
	in.DefaultPage()
	filter := repository.LoteFilter{
		MedicamentoTexto: strings.TrimSpace(in.Medicamento),
		Lote:             strings.TrimSpace(in.Lote),
		Fornecedor:       strings.TrimSpace(in.Fornecedor),
		Responsavel:      strings.TrimSpace(in.Responsavel),
		Status:           strings.TrimSpace(in.Status),
		Limit:            in.Limit,
		Offset:           in.Offset,
	}
	var err error
	if filter.EntradaDe, err = parseDataOpcional(in.EntradaDe); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if filter.EntradaAte, err = parseDataOpcional(in.EntradaAte); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if filter.ValidadeDe, err = parseDataOpcional(in.ValidadeDe); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if filter.ValidadeAte, err = parseDataOpcional(in.ValidadeAte); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if filter.Status != "" && !entity.StatusValido(filter.Status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.loteRepo.ListAtivos(filter)
}

func parseDataOpcional(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse(formatoData, strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}
