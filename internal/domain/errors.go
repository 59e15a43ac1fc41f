package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrLoteNotFound        = errors.New("lote não encontrado")
	ErrMedicamentoNotFound = errors.New("medicamento não encontrado")
	ErrUsuarioNotFound     = errors.New("usuário não encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrEmailAlreadyExists  = errors.New("o e-mail já está cadastrado")
	ErrLoteExcluido        = errors.New("lote já excluído")
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
	ErrRequisicaoDuplicada = errors.New("requisição de baixa já processada")
	ErrArmazenamento       = errors.New("falha transitória de armazenamento")
)

// EstoqueInsuficienteError carrega a quantidade solicitada e a disponível
// para montar a mensagem ao usuário.
type EstoqueInsuficienteError struct {
	Solicitada decimal.Decimal
	Disponivel decimal.Decimal
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("estoque insuficiente: solicitado %s, disponível %s",
		e.Solicitada.String(), e.Disponivel.String())
}

// Is permite errors.Is(err, ErrEstoqueInsuficiente) sobre o erro tipado.
func (e *EstoqueInsuficienteError) Is(target error) bool {
	return target == ErrEstoqueInsuficiente
}
