package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/shopbot/internal/application/assistant"
	"github.com/jhoicas/shopbot/internal/application/receipt"
	"github.com/jhoicas/shopbot/internal/domain/nlp"
	"github.com/jhoicas/shopbot/internal/domain/repository"
	"github.com/jhoicas/shopbot/internal/infrastructure/cache"
	"github.com/jhoicas/shopbot/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/shopbot/internal/infrastructure/pdf"
	"github.com/jhoicas/shopbot/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/shopbot/internal/interfaces/http"
	"github.com/jhoicas/shopbot/pkg/config"
	"github.com/jhoicas/shopbot/pkg/logger"
)

// storage agrupa los adaptadores elegidos según STORAGE_DRIVER.
type storage struct {
	catalog       repository.CatalogRepository
	orders        repository.OrderRepository
	tx            assistant.OrderTxRunner
	conversations repository.ConversationRepository
	close         func()
}

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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.close()

	dialogueUC := assistant.NewDialogueUseCase(
		st.conversations, st.catalog, st.tx, nlp.DefaultRules(),
		assistant.Config{TaxRate: cfg.Shop.TaxRate, SuggestionLimit: cfg.Shop.Suggestions},
		log.Named("dialogue"),
	)

	// PDF: ticket de compra descargable desde /recibo/:id
	receiptUC := receipt.NewUseCase(st.orders, infrapdf.NewMarotoReceiptGenerator(), cfg.Shop.Name)

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
		Title:    "ShopBot API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Dialogue: dialogueUC,
		Receipts: receiptUC,
		Token: httpRouter.TokenConfig{
			Secret:     cfg.JWT.Secret,
			Issuer:     cfg.JWT.Issuer,
			ExpMinutes: cfg.JWT.Expiration,
		},
		Log: log.Named("http"),
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

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		catalog, err := memory.NewCatalogRepository(memory.SeedProducts())
		if err != nil {
			return nil, fmt.Errorf("catálogo en memoria: %w", err)
		}
		orders := memory.NewOrderRepository()
		return &storage{
			catalog:       catalog,
			orders:        orders,
			tx:            orders,
			conversations: memory.NewConversationRepository(),
			close:         func() {},
		}, nil

	case config.StoragePostgres:
		if cfg.Storage.AutoMigrate {
			if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
				return nil, err
			}
			log.Info().Msg("migraciones aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			pool.Close()
			return nil, fmt.Errorf("conexión a Redis: %w", err)
		}

		return &storage{
			catalog:       postgres.NewCatalogRepository(pool),
			orders:        postgres.NewOrderRepository(pool),
			tx:            postgres.NewTxRunner(pool),
			conversations: cache.NewConversationStore(client, cfg.Redis.TTL()),
			close: func() {
				if err := client.Close(); err != nil {
					log.Warn().Err(err).Msg("cerrar Redis")
				}
				pool.Close()
			},
		}, nil
	}
	return nil, fmt.Errorf("STORAGE_DRIVER desconocido: %q", cfg.Storage.Driver)
}
