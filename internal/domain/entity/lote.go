package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain"
)

// Status de um lote de estoque.
const (
	StatusAtivo      = "ativo"
	StatusVencido    = "vencido"
	StatusQuarentena = "quarentena"
	StatusDevolvido  = "devolvido"
	StatusBloqueado  = "bloqueado"
)

// StatusValido informa se o status pertence ao conjunto aceito.
func StatusValido(s string) bool {
	switch s {
	case StatusAtivo, StatusVencido, StatusQuarentena, StatusDevolvido, StatusBloqueado:
		return true
	}
	return false
}

// LoteEstoque representa um lote de medicamento em estoque (medicamentos_estoque).
// QuantidadeAtual é uma projeção mantida em sincronia com o diário de
// movimentos; toda baixa atualiza os dois na mesma transação.
type LoteEstoque struct {
	ID                 string
	MedicamentoID      string
	Lote               string // código do lote, único por medicamento
	QuantidadeAtual    decimal.Decimal
	QuantidadeMinima   decimal.Decimal
	QuantidadeMaxima   *decimal.Decimal
	Localizacao        string
	DataEntrada        time.Time
	DataValidade       *time.Time
	Fornecedor         string
	ValorUnitario      *decimal.Decimal
	ValorTotal         *decimal.Decimal
	ResponsavelEntrada string
	Status             string
	Observacoes        string
	DeletedAt          *time.Time // soft delete; presente = lote imutável e fora das listagens
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Excluido informa se o lote foi excluído logicamente.
func (l *LoteEstoque) Excluido() bool {
	return l.DeletedAt != nil
}

// Vencido informa se a validade do lote já passou na data de referência.
func (l *LoteEstoque) Vencido(ref time.Time) bool {
	return l.DataValidade != nil && l.DataValidade.Before(ref)
}

// AbaixoDoMinimo informa se a quantidade atual está no limiar mínimo ou abaixo.
func (l *LoteEstoque) AbaixoDoMinimo() bool {
	return l.QuantidadeAtual.LessThanOrEqual(l.QuantidadeMinima)
}

// Validar verifica os invariantes do lote sobre o estado completo
// (também deve ser chamado após aplicar um update parcial).
func (l *LoteEstoque) Validar() error {
	if strings.TrimSpace(l.MedicamentoID) == "" {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(l.Lote) == "" {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(l.ResponsavelEntrada) == "" {
		return domain.ErrInvalidInput
	}
	if l.DataEntrada.IsZero() {
		return domain.ErrInvalidInput
	}
	if !StatusValido(l.Status) {
		return domain.ErrInvalidInput
	}
	if l.QuantidadeAtual.IsNegative() {
		return domain.ErrInvalidInput
	}
	if l.QuantidadeMinima.IsNegative() {
		return domain.ErrInvalidInput
	}
	if l.QuantidadeMaxima != nil && l.QuantidadeMaxima.LessThan(l.QuantidadeMinima) {
		return domain.ErrInvalidInput
	}
	return nil
}
