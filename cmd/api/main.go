package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/auth"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/estoque"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/usecase"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/infrastructure/events"
	infrapdf "github.com/gfarias-dev/farmacia-estoque-api/internal/infrastructure/pdf"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/gfarias-dev/farmacia-estoque-api/internal/interfaces/http"
	"github.com/gfarias-dev/farmacia-estoque-api/pkg/config"
	"github.com/gfarias-dev/farmacia-estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	loteRepo := postgres.NewLoteRepository(pool)
	movimentoRepo := postgres.NewMovimentoRepository(pool)
	medicamentoRepo := postgres.NewMedicamentoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Publicador de eventos: opcional, só conecta se AMQP_URL estiver definido.
	// A variável é da interface para não passar um ponteiro nil tipado adiante.
	var publisher estoque.EventPublisher
	if cfg.AMQP.URL != "" {
		p, err := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão com o RabbitMQ")
		}
		defer p.Close()
		publisher = p
		log.Info().Str("exchange", cfg.AMQP.Exchange).Msg("publicador de eventos ativo")
	}

	loteUC := estoque.NewLoteUseCase(txRunner, loteRepo, medicamentoRepo)
	baixaUC := estoque.NewBaixaUseCase(txRunner, medicamentoRepo, publisher)
	exclusaoUC := estoque.NewExclusaoUseCase(txRunner, medicamentoRepo, publisher)
	reconciliacaoUC := estoque.NewReconciliacaoUseCase(loteRepo, movimentoRepo)

	pdfGenerator := infrapdf.NewRelatorioGenerator()
	relatorioUC := estoque.NewRelatorioUseCase(loteRepo, medicamentoRepo, pdfGenerator)

	medicamentoUC := usecase.NewMedicamentoUseCase(medicamentoRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Farmácia Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		LoteUC:          loteUC,
		BaixaUC:         baixaUC,
		ExclusaoUC:      exclusaoUC,
		ReconciliacaoUC: reconciliacaoUC,
		RelatorioUC:     relatorioUC,
		MedicamentoUC:   medicamentoUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
