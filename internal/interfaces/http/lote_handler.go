package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/dto"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/estoque"
)

// LoteHandler trata o ciclo regular dos lotes: entrada, edição, consulta e
// listagem ativa, além do relatório em PDF (protegido).
type LoteHandler struct {
	lotes     *estoque.LoteUseCase
	relatorio *estoque.RelatorioUseCase
}

// NewLoteHandler constrói o handler.
func NewLoteHandler(lotes *estoque.LoteUseCase, relatorio *estoque.RelatorioUseCase) *LoteHandler {
	return &LoteHandler{lotes: lotes, relatorio: relatorio}
}

// Criar godoc
// @Summary      Registrar entrada de lote
// @Tags         lotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarLoteRequest  true  "dados do lote; quantidades como texto com vírgula ou ponto"
// @Success      201   {object}  dto.LoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estoque/lotes [post]
func (h *LoteHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	lote, err := h.lotes.Criar(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewLoteResponse(lote))
}

// Atualizar godoc
// @Summary      Atualizar lote (validação sobre o estado mesclado)
// @Tags         lotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID do lote"
// @Param        body  body  dto.AtualizarLoteRequest  true  "campos a alterar"
// @Success      200   {object}  dto.LoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estoque/lotes/{id} [put]
func (h *LoteHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	lote, err := h.lotes.Atualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.NewLoteResponse(lote))
}

// ObterPorID godoc
// @Summary      Consultar lote por id
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do lote"
// @Success      200  {object}  dto.LoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoque/lotes/{id} [get]
func (h *LoteHandler) ObterPorID(c *fiber.Ctx) error {
	lote, err := h.lotes.ObterPorID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.NewLoteResponse(lote))
}

// Listar godoc
// @Summary      Listar lotes ativos com filtros
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        medicamento  query  string  false  "substring do nome ou código do medicamento"
// @Param        lote         query  string  false  "código do lote"
// @Param        fornecedor   query  string  false  "fornecedor"
// @Param        responsavel  query  string  false  "responsável pela entrada"
// @Param        status       query  string  false  "ativo|vencido|quarentena|devolvido|bloqueado"
// @Param        entrada_de   query  string  false  "data de entrada mínima (2006-01-02)"
// @Param        entrada_ate  query  string  false  "data de entrada máxima"
// @Param        validade_de  query  string  false  "validade mínima"
// @Param        validade_ate query  string  false  "validade máxima"
// @Success      200  {array}   dto.LoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estoque/lotes [get]
func (h *LoteHandler) Listar(c *fiber.Ctx) error {
	var in dto.ListarLotesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	lotes, err := h.lotes.ListarAtivos(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.LoteResponse, 0, len(lotes))
	for _, l := range lotes {
		out = append(out, dto.NewLoteResponse(l))
	}
	return c.JSON(fiber.Map{"total": len(out), "lotes": out})
}

// Relatorio godoc
// @Summary      Relatório de Estoque em PDF
// @Tags         lotes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/estoque/relatorio [get]
func (h *LoteHandler) Relatorio(c *fiber.Ctx) error {
	pdf, err := h.relatorio.Gerar(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="relatorio-estoque.pdf"`)
	return c.Send(pdf)
}
