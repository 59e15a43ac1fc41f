package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/auth"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/estoque"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	LoteUC          *estoque.LoteUseCase
	BaixaUC         *estoque.BaixaUseCase
	ExclusaoUC      *estoque.ExclusaoUseCase
	ReconciliacaoUC *estoque.ReconciliacaoUseCase
	RelatorioUC     *estoque.RelatorioUseCase
	MedicamentoUC   *usecase.MedicamentoUseCase
	JWTSecret       string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Medicamentos (protegido)
	medicamentos := protected.Group("/medicamentos")
	medicamentoHandler := NewMedicamentoHandler(deps.MedicamentoUC)
	medicamentos.Post("/", RequireRole("admin", "farmaceutico"), medicamentoHandler.Criar)
	medicamentos.Get("/", medicamentoHandler.Listar)
	medicamentos.Get("/:id", medicamentoHandler.ObterPorID)

	// Estoque por lote (protegido)
	estoqueGroup := protected.Group("/estoque")
	loteHandler := NewLoteHandler(deps.LoteUC, deps.RelatorioUC)
	estoqueHandler := NewEstoqueHandler(deps.BaixaUC, deps.ExclusaoUC, deps.ReconciliacaoUC)

	estoqueGroup.Get("/relatorio", loteHandler.Relatorio)
	estoqueGroup.Post("/lotes", RequireRole("admin", "farmaceutico"), loteHandler.Criar)
	estoqueGroup.Get("/lotes", loteHandler.Listar)
	estoqueGroup.Get("/lotes/:id", loteHandler.ObterPorID)
	estoqueGroup.Put("/lotes/:id", RequireRole("admin", "farmaceutico"), loteHandler.Atualizar)
	estoqueGroup.Delete("/lotes/:id", RequireRole("admin", "farmaceutico"), estoqueHandler.Excluir)
	estoqueGroup.Post("/lotes/:id/baixa", estoqueHandler.Baixa)
	estoqueGroup.Get("/lotes/:id/movimentos", estoqueHandler.Movimentos)
	estoqueGroup.Get("/lotes/:id/resumo", estoqueHandler.Resumo)
}
