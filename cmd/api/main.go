package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/extraction"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/history"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ledger"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/pipeline"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ports"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/reconciliation"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/registry"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
	infraai "github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/ai"
	infrapdf "github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/pdf"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/pdftext"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/postgres"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/redisstore"
	httpRouter "github.com/Luiz2608/Software-Financeiro---Paraiba/internal/interfaces/http"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/config"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/logger"

	_ "github.com/Luiz2608/Software-Financeiro---Paraiba/docs"
)

// @title        Contas API
// @version      1.0
// @description  Extracción de notas fiscales (PDF) y registro en contas a pagar / a receber.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("ai_provider", cfg.AI.Provider).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	personRepo := postgres.NewPersonRepository(pool)
	classificationRepo := postgres.NewClassificationRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	installmentRepo := postgres.NewInstallmentRepository(pool)
	linkRepo := postgres.NewMovementClassificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	probe := ledger.NewSchemaProbe(postgres.NewSchemaInspector(pool), log)

	var historyRepo repository.HistoryRepository = postgres.NewHistoryRepository(pool)
	if cfg.History.Backend == "redis" {
		rdb, err := redisstore.NewClient(ctx, cfg.History.RedisAddr, cfg.History.RedisPassword, cfg.History.RedisDB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		historyRepo = redisstore.NewHistoryRepository(rdb, time.Duration(cfg.History.TTLHours)*time.Hour)
	}
	historySvc := history.NewService(historyRepo)

	// Modelo de lenguaje: la credencial llega por request; la del servidor es el valor por defecto.
	aiTimeout := time.Duration(cfg.AI.HTTPTimeoutSeconds) * time.Second
	var completer ports.TextCompleter
	switch cfg.AI.Provider {
	case "anthropic":
		completer = infraai.NewAnthropicCompleter(cfg.AI.AnthropicModel, aiTimeout)
	default:
		completer = infraai.NewGeminiCompleter(cfg.AI.GeminiModel, aiTimeout)
	}
	catalog, err := extraction.LoadCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo de extracción")
	}
	policy := extraction.DirectionPolicy{OrganizationsDefault: entity.Direction(cfg.Extraction.OrganizationsDirection)}

	materializer := ledger.NewMaterializer(txRunner, probe, log)
	orchestrator := pipeline.NewOrchestrator(
		extraction.NewService(completer, catalog, policy, log).WithModelTimeout(aiTimeout),
		reconciliation.NewPersonReconciler(personRepo, log),
		reconciliation.NewClassificationReconciler(classificationRepo, probe, log),
		materializer,
		log,
	)
	uploadUC := pipeline.NewUploadUseCase(pdftext.NewExtractor(), orchestrator, historySvc, cfg.AI.DefaultAPIKey(), log)

	movementUC := ledger.NewMovementUseCase(ledger.MovementDeps{
		Tx:              txRunner,
		Movements:       movementRepo,
		Installments:    installmentRepo,
		Links:           linkRepo,
		Persons:         personRepo,
		Classifications: classificationRepo,
		Probe:           probe,
		Materializer:    materializer,
		Renderer:        infrapdf.NewVoucherGenerator(),
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    (cfg.HTTP.UploadMaxMB + 1) << 20,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 120, // la extracción con el modelo puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-API-Key",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Contas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:      cfg.App.Name,
		DB:               pool,
		Upload:           uploadUC,
		UploadMaxMB:      cfg.HTTP.UploadMaxMB,
		PersonUC:         registry.NewPersonUseCase(personRepo),
		ClassificationUC: registry.NewClassificationUseCase(classificationRepo, probe),
		MovementUC:       movementUC,
		History:          historySvc,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
