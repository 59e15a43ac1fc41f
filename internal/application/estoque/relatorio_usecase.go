package estoque

import (
	"context"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/repository"
)

// LinhaRelatorio um lote com o nome do medicamento resolvido, pronto para o PDF.
type LinhaRelatorio struct {
	Medicamento string
	Lote        *entity.LoteEstoque
}

// RelatorioPDFGenerator porta do gerador do Relatório de Estoque.
type RelatorioPDFGenerator interface {
	GerarRelatorioEstoque(ctx context.Context, linhas []LinhaRelatorio) ([]byte, error)
}

// RelatorioUseCase monta o Relatório de Estoque em PDF com os lotes ativos.
type RelatorioUseCase struct {
	loteRepo        repository.LoteRepository
	medicamentoRepo repository.MedicamentoRepository
	generator       RelatorioPDFGenerator
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(loteRepo repository.LoteRepository, medicamentoRepo repository.MedicamentoRepository, generator RelatorioPDFGenerator) *RelatorioUseCase {
	return &RelatorioUseCase{loteRepo: loteRepo, medicamentoRepo: medicamentoRepo, generator: generator}
}

// Gerar lista os lotes ativos, resolve os nomes dos medicamentos e delega ao gerador.
func (uc *RelatorioUseCase) Gerar(ctx context.Context) ([]byte, error) {
	lotes, err := uc.loteRepo.ListAtivos(repository.LoteFilter{Limit: 1000})
	if err != nil {
		return nil, err
	}
	nomes := map[string]string{}
	linhas := make([]LinhaRelatorio, 0, len(lotes))
	for _, l := range lotes {
		nome, ok := nomes[l.MedicamentoID]
		if !ok {
			nome = l.MedicamentoID
			if med, err := uc.medicamentoRepo.GetByID(l.MedicamentoID); err == nil && med != nil {
				nome = med.Nome
			}
			nomes[l.MedicamentoID] = nome
		}
		linhas = append(linhas, LinhaRelatorio{Medicamento: nome, Lote: l})
	}
	return uc.generator.GerarRelatorioEstoque(ctx, linhas)
}
