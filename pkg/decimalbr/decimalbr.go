// Package decimalbr converte quantidades digitadas pelo usuário em
// decimal.Decimal, aceitando vírgula ou ponto como separador decimal
// ("2,5" e "2.5" são equivalentes).
package decimalbr

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converte o texto em decimal. Aceita vírgula ou ponto como separador
// decimal; não aceita separador de milhar nem texto vazio.
func Parse(texto string) (decimal.Decimal, error) {
	s := strings.TrimSpace(texto)
	if s == "" {
		return decimal.Zero, fmt.Errorf("decimalbr: texto vazio")
	}
	if strings.Count(s, ",")+strings.Count(s, ".") > 1 {
		return decimal.Zero, fmt.Errorf("decimalbr: número inválido: %q", texto)
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("decimalbr: número inválido: %q", texto)
	}
	return d, nil
}
