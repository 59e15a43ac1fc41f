package entity

import "time"

// Medicamento representa o cadastro de um medicamento da farmácia municipal.
// O estoque em si é controlado por lote (LoteEstoque).
type Medicamento struct {
	ID             string
	Nome           string
	PrincipioAtivo string
	Apresentacao   string // ex.: "comprimido 500mg", "xarope 120ml"
	Codigo         string // código interno / catálogo municipal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
