package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
)

// LoteFilter filtros da listagem de lotes ativos. Campos vazios/nil são ignorados.
type LoteFilter struct {
	MedicamentoTexto string // substring sobre nome ou código do medicamento
	Lote             string
	Fornecedor       string
	Responsavel      string
	Status           string
	EntradaDe        *time.Time
	EntradaAte       *time.Time
	ValidadeDe       *time.Time
	ValidadeAte      *time.Time
	Limit            int
	Offset           int
}

// LoteRepository porta de persistência de lotes de estoque.
// GetByID/GetForUpdate retornam (nil, nil) quando o lote não existe;
// lotes excluídos logicamente ainda são retornados (o caller decide).
type LoteRepository interface {
	Create(lote *entity.LoteEstoque) error
	GetByID(id string) (*entity.LoteEstoque, error)
	// GetForUpdate carrega o lote bloqueando a fila (SELECT FOR UPDATE);
	// só faz sentido dentro de uma transação do TxRunner.
	GetForUpdate(id string) (*entity.LoteEstoque, error)
	GetByMedicamentoELote(medicamentoID, lote string) (*entity.LoteEstoque, error)
	Update(lote *entity.LoteEstoque) error
	UpdateQuantidade(id string, quantidade decimal.Decimal, quando time.Time) error
	MarcarExcluido(id string, quando time.Time) error
	ListAtivos(filter LoteFilter) ([]*entity.LoteEstoque, error)
}
