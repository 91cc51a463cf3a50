package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/kavins/produccion-api/internal/application/analytics"
	"github.com/kavins/produccion-api/internal/application/auth"
	"github.com/kavins/produccion-api/internal/application/production"
	"github.com/kavins/produccion-api/internal/application/report"
	"github.com/kavins/produccion-api/internal/application/usecase"
	infrapdf "github.com/kavins/produccion-api/internal/infrastructure/pdf"
	"github.com/kavins/produccion-api/internal/infrastructure/postgres"
	httpRouter "github.com/kavins/produccion-api/internal/interfaces/http"
	"github.com/kavins/produccion-api/pkg/config"
	"github.com/kavins/produccion-api/pkg/logger"
	"github.com/kavins/produccion-api/pkg/metrics"
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

	metrics.Register()

	fabricRepo := postgres.NewFabricRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	seamstressRepo := postgres.NewSeamstressRepository(pool)
	referenceRepo := postgres.NewReferenceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	orderUC := usecase.NewOrderUseCase(orderRepo)
	fabricUC := usecase.NewFabricUseCase(fabricRepo)
	seamstressUC := usecase.NewSeamstressUseCase(seamstressRepo)
	referenceUC := usecase.NewReferenceUseCase(referenceRepo)

	// Ciclo de producción: corte, distribución y cierre corren en transacción
	confirmCutUC := production.NewConfirmCutUseCase(txRunner)
	distributeUC := production.NewDistributeUseCase(txRunner, seamstressRepo)
	finishSplitUC := production.NewFinishSplitUseCase(txRunner)

	// Ficha de producción en PDF
	sheetGenerator := infrapdf.NewMarotoOrderSheetGenerator()
	orderSheetUC := report.NewOrderSheetUseCase(orderRepo, sheetGenerator)

	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
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
		Title:    "Producción API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:      orderUC,
		FabricUC:     fabricUC,
		SeamstressUC: seamstressUC,
		ReferenceUC:  referenceUC,
		ConfirmCut:   confirmCutUC,
		Distribute:   distributeUC,
		FinishSplit:  finishSplitUC,
		OrderSheet:   orderSheetUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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
