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
	"github.com/spf13/pflag"

	"github.com/jhoicas/petshop-storefront/internal/application/usecase"
	"github.com/jhoicas/petshop-storefront/internal/domain/repository"
	"github.com/jhoicas/petshop-storefront/internal/infrastructure/memory"
	"github.com/jhoicas/petshop-storefront/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/petshop-storefront/internal/interfaces/http"
	"github.com/jhoicas/petshop-storefront/pkg/config"
	"github.com/jhoicas/petshop-storefront/pkg/jwt"
	"github.com/jhoicas/petshop-storefront/pkg/logger"
)

func main() {
	flags := pflag.NewFlagSet("catalog-api", pflag.ExitOnError)
	flags.String("env", "", "entorno: development | production")
	flags.String("log-level", "", "trace, debug, info, warn, error")
	flags.String("db-driver", "", "memory | postgres")
	flags.Int("port", 0, "puerto HTTP")
	subject := flags.String("subject", "storefront", "subject del token (subcomando token)")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// catalog-api token → imprime un Bearer para CATALOG_API_TOKEN del storefront
	if flags.Arg(0) == "token" {
		tok, err := jwt.Generate(cfg.JWT.Secret, *subject, jwt.ScopeCatalogWrite, cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			fmt.Fprintln(os.Stderr, "generar token:", err)
			os.Exit(1)
		}
		fmt.Println(tok)
		return
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Driver).
		Bool("auth", cfg.JWT.Secret != "").
		Msg("iniciando API del catálogo")

	ctx := context.Background()
	var productRepo repository.ProductRepository
	switch cfg.DB.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema")
		}
		productRepo = postgres.NewProductRepository(pool)
	default:
		productRepo = memory.NewProductRepository()
	}
	productUC := usecase.NewProductUseCase(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Petshop Catalog API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC: productUC,
		JWTSecret: cfg.JWT.Secret,
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

	log.Info().Msg("API detenida")
}
