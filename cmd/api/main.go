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

	"github.com/alvear-textil/deposito-api/internal/application/estadisticas"
	"github.com/alvear-textil/deposito-api/internal/application/reporte"
	appstock "github.com/alvear-textil/deposito-api/internal/application/stock"
	"github.com/alvear-textil/deposito-api/internal/application/umbrales"
	"github.com/alvear-textil/deposito-api/internal/domain/catalogo"
	"github.com/alvear-textil/deposito-api/internal/domain/repository"
	"github.com/alvear-textil/deposito-api/internal/infrastructure/jsonfile"
	"github.com/alvear-textil/deposito-api/internal/infrastructure/postgres"
	"github.com/alvear-textil/deposito-api/internal/infrastructure/respaldo"
	httpRouter "github.com/alvear-textil/deposito-api/internal/interfaces/http"
	"github.com/alvear-textil/deposito-api/pkg/config"
	"github.com/alvear-textil/deposito-api/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	stockRepo, movRepo, umbralRepo, cleanup, err := construirRepositorios(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicialización del almacenamiento")
	}
	defer cleanup()

	stockUC := appstock.NewUseCase(stockRepo, movRepo, log)
	umbralesUC := umbrales.NewUseCase(umbralRepo, catalogo.UmbralesPorDefecto(), log)
	estadisticasUC := estadisticas.NewUseCase(stockUC, umbralesUC)
	pdfGenerator := reporte.NewPDFGenerator()

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
		Title:    "Depósito Textil API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:        stockUC,
		UmbralesUC:     umbralesUC,
		EstadisticasUC: estadisticasUC,
		PDF:            pdfGenerator,
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

// construirRepositorios arma la capa de persistencia según el driver
// configurado. Con driver postgres y respaldo activo, cada repositorio queda
// envuelto en su decorador de respaldo con los archivos JSON como secundario.
func construirRepositorios(cfg *config.Config, log *logger.Logger) (
	repository.StockRepository,
	repository.MovimientoRepository,
	repository.UmbralRepository,
	func(),
	error,
) {
	nada := func() {}

	switch cfg.Storage.Driver {
	case config.DriverJSON:
		if err := jsonfile.EnsureDataFiles(cfg.Storage.DataDir, catalogo.UmbralesPorDefecto()); err != nil {
			return nil, nil, nil, nada, err
		}
		return jsonfile.NewStockRepository(cfg.Storage.DataDir),
			jsonfile.NewMovimientoRepository(cfg.Storage.DataDir),
			jsonfile.NewUmbralRepository(cfg.Storage.DataDir),
			nada, nil

	case config.DriverPostgres:
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, nil, nada, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, nada, err
		}

		var (
			stockRepo  repository.StockRepository      = postgres.NewStockRepository(pool)
			movRepo    repository.MovimientoRepository = postgres.NewMovimientoRepository(pool)
			umbralRepo repository.UmbralRepository     = postgres.NewUmbralRepository(pool)
		)

		if cfg.Storage.Respaldo {
			if err := jsonfile.EnsureDataFiles(cfg.Storage.DataDir, catalogo.UmbralesPorDefecto()); err != nil {
				pool.Close()
				return nil, nil, nil, nada, err
			}
			stockRepo = respaldo.NewStock(stockRepo, jsonfile.NewStockRepository(cfg.Storage.DataDir), log)
			movRepo = respaldo.NewMovimientos(movRepo, jsonfile.NewMovimientoRepository(cfg.Storage.DataDir), log)
			umbralRepo = respaldo.NewUmbrales(umbralRepo, jsonfile.NewUmbralRepository(cfg.Storage.DataDir), log)
		}

		return stockRepo, movRepo, umbralRepo, pool.Close, nil
	}

	// config.Load ya validó el driver; esto no debería alcanzarse.
	panic("driver de almacenamiento no soportado: " + cfg.Storage.Driver)
}
