package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
)

// CriarLoteRequest body de POST /api/estoque/lotes.
// Datas em "2006-01-02"; quantidades como texto com vírgula ou ponto.
type CriarLoteRequest struct {
	MedicamentoID      string `json:"medicamento_id"`
	Lote               string `json:"lote"`
	Quantidade         string `json:"quantidade"`
	QuantidadeMinima   string `json:"quantidade_minima"`
	QuantidadeMaxima   string `json:"quantidade_maxima,omitempty"`
	Localizacao        string `json:"localizacao,omitempty"`
	DataEntrada        string `json:"data_entrada"`
	DataValidade       string `json:"data_validade,omitempty"`
	Fornecedor         string `json:"fornecedor,omitempty"`
	ValorUnitario      string `json:"valor_unitario,omitempty"`
	ResponsavelEntrada string `json:"responsavel_entrada"`
	Status             string `json:"status,omitempty"`
	Observacoes        string `json:"observacoes,omitempty"`
}

// AtualizarLoteRequest body de PUT /api/estoque/lotes/:id. Campos nil não são alterados.
type AtualizarLoteRequest struct {
	Lote             *string `json:"lote,omitempty"`
	Quantidade       *string `json:"quantidade,omitempty"`
	QuantidadeMinima *string `json:"quantidade_minima,omitempty"`
	QuantidadeMaxima *string `json:"quantidade_maxima,omitempty"`
	Localizacao      *string `json:"localizacao,omitempty"`
	DataValidade     *string `json:"data_validade,omitempty"`
	Fornecedor       *string `json:"fornecedor,omitempty"`
	ValorUnitario    *string `json:"valor_unitario,omitempty"`
	Status           *string `json:"status,omitempty"`
	Observacoes      *string `json:"observacoes,omitempty"`
}

// BaixaRequest body de POST /api/estoque/lotes/:id/baixa.
// Quantidade é texto digitado pelo usuário (vírgula ou ponto).
// RequestID é a chave de idempotência opcional gerada pelo cliente.
type BaixaRequest struct {
	Quantidade string `json:"quantidade"`
	Motivo     string `json:"motivo"`
	RequestID  string `json:"request_id,omitempty"`
}

// BaixaResponse resultado de uma baixa bem-sucedida.
type BaixaResponse struct {
	Success            bool            `json:"success"`
	Medicamento        string          `json:"medicamento"`
	Lote               string          `json:"lote"`
	QuantidadeRemovida decimal.Decimal `json:"quantidade_removida"`
	QuantidadeAnterior decimal.Decimal `json:"quantidade_anterior"`
	QuantidadeAtual    decimal.Decimal `json:"quantidade_atual"`
}

// ExcluirLoteRequest body de DELETE /api/estoque/lotes/:id. Motivo é obrigatório.
type ExcluirLoteRequest struct {
	Motivo string `json:"motivo"`
}

// ExclusaoResponse resumo de uma exclusão lógica.
type ExclusaoResponse struct {
	Success            bool            `json:"success"`
	Medicamento        string          `json:"medicamento"`
	Lote               string          `json:"lote"`
	QuantidadeExcluida decimal.Decimal `json:"quantidade_excluida"`
	Motivo             string          `json:"motivo"`
	ExecutadoPor       string          `json:"executado_por"`
}

// LoteResponse representação HTTP de um lote.
type LoteResponse struct {
	ID                 string           `json:"id"`
	MedicamentoID      string           `json:"medicamento_id"`
	Lote               string           `json:"lote"`
	QuantidadeAtual    decimal.Decimal  `json:"quantidade_atual"`
	QuantidadeMinima   decimal.Decimal  `json:"quantidade_minima"`
	QuantidadeMaxima   *decimal.Decimal `json:"quantidade_maxima,omitempty"`
	Localizacao        string           `json:"localizacao,omitempty"`
	DataEntrada        string           `json:"data_entrada"`
	DataValidade       *string          `json:"data_validade,omitempty"`
	Fornecedor         string           `json:"fornecedor,omitempty"`
	ValorUnitario      *decimal.Decimal `json:"valor_unitario,omitempty"`
	ValorTotal         *decimal.Decimal `json:"valor_total,omitempty"`
	ResponsavelEntrada string           `json:"responsavel_entrada"`
	Status             string           `json:"status"`
	Observacoes        string           `json:"observacoes,omitempty"`
}

// NewLoteResponse converte a entidade para o DTO HTTP.
func NewLoteResponse(l *entity.LoteEstoque) LoteResponse {
	resp := LoteResponse{
		ID:                 l.ID,
		MedicamentoID:      l.MedicamentoID,
		Lote:               l.Lote,
		QuantidadeAtual:    l.QuantidadeAtual,
		QuantidadeMinima:   l.QuantidadeMinima,
		QuantidadeMaxima:   l.QuantidadeMaxima,
		Localizacao:        l.Localizacao,
		DataEntrada:        l.DataEntrada.Format("2006-01-02"),
		Fornecedor:         l.Fornecedor,
		ValorUnitario:      l.ValorUnitario,
		ValorTotal:         l.ValorTotal,
		ResponsavelEntrada: l.ResponsavelEntrada,
		Status:             l.Status,
		Observacoes:        l.Observacoes,
	}
	if l.DataValidade != nil {
		v := l.DataValidade.Format("2006-01-02")
		resp.DataValidade = &v
	}
	return resp
}

// MovimentoResponse representação HTTP de um movimento do diário.
type MovimentoResponse struct {
	ID           string          `json:"id"`
	LoteID       string          `json:"lote_id"`
	Tipo         string          `json:"tipo"`
	Quantidade   decimal.Decimal `json:"quantidade"`
	Motivo       string          `json:"motivo,omitempty"`
	ExecutadoEm  time.Time       `json:"executado_em"`
	ExecutadoPor string          `json:"executado_por"`
}

// NewMovimentoResponse converte a entidade para o DTO HTTP.
func NewMovimentoResponse(m *entity.Movimento) MovimentoResponse {
	return MovimentoResponse{
		ID:           m.ID,
		LoteID:       m.LoteID,
		Tipo:         m.Tipo,
		Quantidade:   m.Quantidade,
		Motivo:       m.Motivo,
		ExecutadoEm:  m.ExecutadoEm,
		ExecutadoPor: m.ExecutadoPor,
	}
}

// ResumoResponse resposta de GET /api/estoque/lotes/:id/resumo.
type ResumoResponse struct {
	TotalEntradas       decimal.Decimal    `json:"total_entradas"`
	TotalSaidas         decimal.Decimal    `json:"total_saidas"`
	TotalTransferencias decimal.Decimal    `json:"total_transferencias"`
	Saldo               decimal.Decimal    `json:"saldo"`
	UltimoMovimento     *MovimentoResponse `json:"ultimo_movimento,omitempty"`
}

// ListarLotesRequest query params de GET /api/estoque/lotes.
type ListarLotesRequest struct {
	Medicamento string `query:"medicamento"`
	Lote        string `query:"lote"`
	Fornecedor  string `query:"fornecedor"`
	Responsavel string `query:"responsavel"`
	Status      string `query:"status"`
	EntradaDe   string `query:"entrada_de"`
	EntradaAte  string `query:"entrada_ate"`
	ValidadeDe  string `query:"validade_de"`
	ValidadeAte string `query:"validade_ate"`
	PageRequest
}
