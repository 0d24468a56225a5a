package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Bodega-api/internal/application/analytics"
	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/application/catalog"
	"github.com/jhoicas/Bodega-api/internal/application/insights"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/application/transfer"
	infraai "github.com/jhoicas/Bodega-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/Bodega-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/ws"
	httpRouter "github.com/jhoicas/Bodega-api/internal/interfaces/http"
	"github.com/jhoicas/Bodega-api/pkg/config"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	backupRepo := postgres.NewBackupRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// WebSocket hub: los casos de uso publican eventos, el hub los difunde.
	hub := ws.NewHub(log.Component("ws"))
	go hub.Run()

	productUC := catalog.NewProductUseCase(productRepo, hub)
	importUC := catalog.NewImportUseCase(productRepo, hub)
	movementUC := inventory.NewApplyStockMovementUseCase(txRunner, hub)
	historyUC := inventory.NewHistoryUseCase(txRepo)
	dashboardUC := analytics.NewDashboardUseCase(productRepo, txRepo)
	csvUC := transfer.NewCSVUseCase(productRepo, importUC)
	backupUC := transfer.NewBackupUseCase(productRepo, txRepo, backupRepo, importUC, hub)

	// Insights IA: el proveedor se elige por configuración; sin credenciales el
	// servicio queda en nil y los endpoints degradan a "no disponible".
	var insightSvc ports.InsightService
	switch cfg.AI.Provider {
	case "gemini":
		if cfg.AI.GeminiAPIKey != "" {
			insightSvc = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		}
	default:
		if cfg.AI.AnthropicAPIKey != "" {
			insightSvc = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
		}
	}
	insightUC := insights.NewInsightUseCase(productRepo, txRepo, insightSvc, cfg.AI.Language)

	pdfGenerator := infrapdf.NewMarotoStockReport(cfg.App.Name)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// WebSocket de eventos de inventario (stock_in, stock_out, altas, respaldos)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(hub.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		MovementUC:  movementUC,
		HistoryUC:   historyUC,
		DashboardUC: dashboardUC,
		InsightUC:   insightUC,
		CSVUC:       csvUC,
		BackupUC:    backupUC,
		AuthUC:      authUC,
		PDF:         pdfGenerator,
		JWTSecret:   cfg.JWT.Secret,
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
