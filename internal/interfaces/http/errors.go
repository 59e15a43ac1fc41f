package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/dto"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain"
)

// respondDomainError traduz o erro de domínio para status + código HTTP.
// Os handlers devolvem aqui tudo que não tratam de forma específica.
func respondDomainError(c *fiber.Ctx, err error) error {
	var insuficiente *domain.EstoqueInsuficienteError
	if errors.As(err, &insuficiente) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success":    false,
			"code":       "ESTOQUE_INSUFICIENTE",
			"message":    insuficiente.Error(),
			"solicitada": insuficiente.Solicitada,
			"disponivel": insuficiente.Disponivel,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrLoteNotFound),
		errors.Is(err, domain.ErrMedicamentoNotFound),
		errors.Is(err, domain.ErrUsuarioNotFound),
		errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrLoteExcluido):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOTE_EXCLUIDO", Message: "lote já excluído"})
	case errors.Is(err, domain.ErrRequisicaoDuplicada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REQUISICAO_DUPLICADA", Message: "baixa já processada para este request_id"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: "já existe um lote deste medicamento com este código"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_JA_CADASTRADO", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
	case errors.Is(err, domain.ErrArmazenamento):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: "falha transitória; releia o estado antes de repetir"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
