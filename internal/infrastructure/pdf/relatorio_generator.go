// Package pdf implementa o Relatório de Estoque da farmácia em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório de Estoque + data de emissão              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Medicamento | Lote | Qtd | Mín | Validade | Status  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: total de lotes listados                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/estoque"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 74}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ estoque.RelatorioPDFGenerator = (*RelatorioGenerator)(nil)

// RelatorioGenerator implementa estoque.RelatorioPDFGenerator usando Maroto v2.
type RelatorioGenerator struct{}

// NewRelatorioGenerator constrói o gerador.
func NewRelatorioGenerator() *RelatorioGenerator { return &RelatorioGenerator{} }

// GerarRelatorioEstoque gera o PDF e devolve seus bytes.
// As linhas saem ordenadas por nome de medicamento com collation pt-BR
// (acentos ordenam como o usuário espera, não por byte).
func (g *RelatorioGenerator) GerarRelatorioEstoque(_ context.Context, linhas []estoque.LinhaRelatorio) ([]byte, error) {
	cl := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(linhas, func(i, j int) bool {
		if c := cl.CompareString(linhas[i].Medicamento, linhas[j].Medicamento); c != 0 {
			return c < 0
		}
		return linhas[i].Lote.Lote < linhas[j].Lote.Lote
	})

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(linhas) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(linhas)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE ESTOQUE — FARMÁCIA MUNICIPAL", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Medicamento", 4, align.Left),
		h("Lote", 2, align.Left),
		h("Qtd. atual", 2, align.Right),
		h("Qtd. mín.", 1, align.Right),
		h("Validade", 2, align.Center),
		h("Status", 1, align.Center),
	)
}

func tableRows(linhas []estoque.LinhaRelatorio) []core.Row {
	hoje := time.Now()
	result := make([]core.Row, 0, len(linhas))
	for _, linha := range linhas {
		l := linha.Lote
		validade := "—"
		corValidade := colorGray
		if l.DataValidade != nil {
			validade = l.DataValidade.Format("02/01/2006")
			if l.Vencido(hoje) {
				corValidade = colorAlert
			}
		}
		corQtd := (*props.Color)(nil)
		if l.AbaixoDoMinimo() {
			corQtd = colorAlert
		}
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(linha.Medicamento, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(l.Lote, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(l.QuantidadeAtual.String(), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: corQtd,
			})),
			col.New(1).Add(text.New(l.QuantidadeMinima.String(), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
			col.New(2).Add(text.New(validade, props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: corValidade,
			})),
			col.New(1).Add(text.New(l.Status, props.Text{
				Size: 7, Align: align.Center, Top: 1,
			})),
		))
	}
	return result
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de lotes ativos: %d", total), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
