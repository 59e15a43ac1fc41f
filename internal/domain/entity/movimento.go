package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimento de estoque.
const (
	MovimentoEntrada       = "entrada"
	MovimentoSaida         = "saida"
	MovimentoTransferencia = "transferencia"
)

// TipoMovimentoValido informa se o tipo pertence ao conjunto aceito.
func TipoMovimentoValido(t string) bool {
	return t == MovimentoEntrada || t == MovimentoSaida || t == MovimentoTransferencia
}

// Movimento é um lançamento imutável do diário de estoque (estoque_movimentos).
// Nunca é atualizado nem removido depois de gravado; o saldo de um lote é
// reconstruível somando seus movimentos.
type Movimento struct {
	ID           string
	LoteID       string
	Tipo         string // entrada, saida, transferencia
	Quantidade   decimal.Decimal
	Motivo       string
	ExecutadoEm  time.Time
	ExecutadoPor string
	RequestID    *string // chave de idempotência da baixa (opcional, única)
}
