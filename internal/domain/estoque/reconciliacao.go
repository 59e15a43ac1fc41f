// Package estoque contém regras puras do domínio de estoque,
// sem dependência de persistência ou transporte.
package estoque

import (
	"github.com/shopspring/decimal"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
)

// ResumoMovimentos agrega o diário de um lote: totais por tipo, saldo
// derivado e o movimento mais recente.
type ResumoMovimentos struct {
	TotalEntradas       decimal.Decimal
	TotalSaidas         decimal.Decimal
	TotalTransferencias decimal.Decimal
	Saldo               decimal.Decimal
	UltimoMovimento     *entity.Movimento
}

// Resumir soma os movimentos por tipo e calcula Saldo = entradas - saídas.
// Transferências são totalizadas à parte e não entram no saldo.
//
// O resumo é apenas informativo: uma divergência entre Saldo e a
// QuantidadeAtual do lote indica bug ou edição manual fora do fluxo,
// e nunca deve ser "corrigida" silenciosamente aqui.
func Resumir(movimentos []*entity.Movimento) ResumoMovimentos {
	r := ResumoMovimentos{
		TotalEntradas:       decimal.Zero,
		TotalSaidas:         decimal.Zero,
		TotalTransferencias: decimal.Zero,
	}
	for _, m := range movimentos {
		switch m.Tipo {
		case entity.MovimentoEntrada:
			r.TotalEntradas = r.TotalEntradas.Add(m.Quantidade)
		case entity.MovimentoSaida:
			r.TotalSaidas = r.TotalSaidas.Add(m.Quantidade)
		case entity.MovimentoTransferencia:
			r.TotalTransferencias = r.TotalTransferencias.Add(m.Quantidade)
		}
		if r.UltimoMovimento == nil || m.ExecutadoEm.After(r.UltimoMovimento.ExecutadoEm) {
			r.UltimoMovimento = m
		}
	}
	r.Saldo = r.TotalEntradas.Sub(r.TotalSaidas)
	return r
}
