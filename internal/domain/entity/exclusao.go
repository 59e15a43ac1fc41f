package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoteExclusao é o registro de auditoria de uma exclusão lógica de lote
// (lotes_exclusoes, insert-only). Guarda a fotografia do lote no momento
// da exclusão para reconstrução posterior.
type LoteExclusao struct {
	ID                  string
	LoteID              string
	MedicamentoNome     string
	Lote                string
	QuantidadeNoMomento decimal.Decimal
	Motivo              string
	ExecutadoPor        string
	ExcluidoEm          time.Time
}
