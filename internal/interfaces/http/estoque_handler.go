package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/dto"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/estoque"
)

// EstoqueHandler trata as operações guardadas do estoque: baixa, exclusão
// lógica, diário de movimentos e resumo de reconciliação (protegido).
type EstoqueHandler struct {
	baixa         *estoque.BaixaUseCase
	exclusao      *estoque.ExclusaoUseCase
	reconciliacao *estoque.ReconciliacaoUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(baixa *estoque.BaixaUseCase, exclusao *estoque.ExclusaoUseCase, reconciliacao *estoque.ReconciliacaoUseCase) *EstoqueHandler {
	return &EstoqueHandler{baixa: baixa, exclusao: exclusao, reconciliacao: reconciliacao}
}

// Baixa godoc
// @Summary      Baixa de estoque (saída guardada)
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID do lote"
// @Param        body  body  dto.BaixaRequest  true  "quantidade (vírgula ou ponto), motivo, request_id opcional"
// @Success      200   {object}  dto.BaixaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estoque/lotes/{id}/baixa [post]
func (h *EstoqueHandler) Baixa(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.BaixaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resultado, err := h.baixa.Executar(c.Context(), estoque.BaixaInput{
		LoteID:       c.Params("id"),
		Quantidade:   in.Quantidade,
		Motivo:       in.Motivo,
		ExecutadoPor: userID,
		RequestID:    in.RequestID,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.BaixaResponse{
		Success:            true,
		Medicamento:        resultado.Medicamento,
		Lote:               resultado.Lote,
		QuantidadeRemovida: resultado.QuantidadeRemovida,
		QuantidadeAnterior: resultado.QuantidadeAnterior,
		QuantidadeAtual:    resultado.QuantidadeAtual,
	})
}

// Excluir godoc
// @Summary      Exclusão lógica de lote (motivo obrigatório)
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID do lote"
// @Param        body  body  dto.ExcluirLoteRequest  true  "motivo"
// @Success      200   {object}  dto.ExclusaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estoque/lotes/{id} [delete]
func (h *EstoqueHandler) Excluir(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ExcluirLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resultado, err := h.exclusao.Executar(c.Context(), estoque.ExclusaoInput{
		LoteID:       c.Params("id"),
		Motivo:       in.Motivo,
		ExecutadoPor: userID,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ExclusaoResponse{
		Success:            true,
		Medicamento:        resultado.Medicamento,
		Lote:               resultado.Lote,
		QuantidadeExcluida: resultado.QuantidadeExcluida,
		Motivo:             resultado.Motivo,
		ExecutadoPor:       resultado.ExecutadoPor,
	})
}

// Movimentos godoc
// @Summary      Diário de movimentos do lote (mais recente primeiro)
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do lote"
// @Success      200  {array}   dto.MovimentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoque/lotes/{id}/movimentos [get]
func (h *EstoqueHandler) Movimentos(c *fiber.Ctx) error {
	movimentos, err := h.reconciliacao.ListarMovimentos(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.MovimentoResponse, 0, len(movimentos))
	for _, m := range movimentos {
		out = append(out, dto.NewMovimentoResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "movimentos": out})
}

// Resumo godoc
// @Summary      Resumo de reconciliação do lote (entradas, saídas, saldo)
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do lote"
// @Success      200  {object}  dto.ResumoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoque/lotes/{id}/resumo [get]
func (h *EstoqueHandler) Resumo(c *fiber.Ctx) error {
	resumo, err := h.reconciliacao.Resumo(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	out := dto.ResumoResponse{
		TotalEntradas:       resumo.TotalEntradas,
		TotalSaidas:         resumo.TotalSaidas,
		TotalTransferencias: resumo.TotalTransferencias,
		Saldo:               resumo.Saldo,
	}
	if resumo.UltimoMovimento != nil {
		m := dto.NewMovimentoResponse(resumo.UltimoMovimento)
		out.UltimoMovimento = &m
	}
	return c.JSON(out)
}
