package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/dto"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/usecase"
)

// MedicamentoHandler cadastro de medicamentos (protegido).
type MedicamentoHandler struct {
	uc *usecase.MedicamentoUseCase
}

// NewMedicamentoHandler constrói o handler.
func NewMedicamentoHandler(uc *usecase.MedicamentoUseCase) *MedicamentoHandler {
	return &MedicamentoHandler{uc: uc}
}

type criarMedicamentoRequest struct {
	Nome           string `json:"nome"`
	PrincipioAtivo string `json:"principio_ativo,omitempty"`
	Apresentacao   string `json:"apresentacao,omitempty"`
	Codigo         string `json:"codigo,omitempty"`
}

// Criar registra um medicamento no catálogo.
func (h *MedicamentoHandler) Criar(c *fiber.Ctx) error {
	var in criarMedicamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	m, err := h.uc.Criar(c.Context(), in.Nome, in.PrincipioAtivo, in.Apresentacao, in.Codigo)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// ObterPorID consulta um medicamento.
func (h *MedicamentoHandler) ObterPorID(c *fiber.Ctx) error {
	m, err := h.uc.ObterPorID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(m)
}

// Listar busca medicamentos por nome ou código.
func (h *MedicamentoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	page.DefaultPage()
	list, err := h.uc.Listar(c.Context(), c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "medicamentos": list})
}
