package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/jhoicas/petshop-storefront/internal/application/cart"
	"github.com/jhoicas/petshop-storefront/internal/application/catalog"
	"github.com/jhoicas/petshop-storefront/internal/infrastructure/catalogapi"
	"github.com/jhoicas/petshop-storefront/internal/infrastructure/localstore"
	"github.com/jhoicas/petshop-storefront/internal/interfaces/cli"
	"github.com/jhoicas/petshop-storefront/pkg/config"
	"github.com/jhoicas/petshop-storefront/pkg/logger"
)

func main() {
	flags := pflag.NewFlagSet("storefront", pflag.ExitOnError)
	flags.String("env", "", "entorno: development | production")
	flags.String("log-level", "", "trace, debug, info, warn, error")
	flags.String("api-url", "", "URL base de la API del catálogo")
	flags.String("api-token", "", "Bearer para crear, actualizar y borrar")
	flags.String("timeout", "", "timeout de cada petición (ej. 10s)")
	flags.String("storage", "", "archivo de almacenamiento local (carrito)")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   os.Stderr,
	})
	log.Debug().
		Str("api", cfg.API.BaseURL).
		Str("storage", cfg.Storage.Path).
		Msg("iniciando storefront")

	client := catalogapi.NewClient(catalogapi.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
		Logger:  log,
	})
	state := catalog.NewState(catalog.Deps{
		Client:   client,
		Notifier: cli.NewTerminalNotifier(os.Stdout),
		Logger:   log,
	})
	defer state.Close()

	storage := localstore.NewFileStorage(cfg.Storage.Path)
	cartSvc := cart.NewService(localstore.NewCartStore(storage, log))

	shell := cli.NewShell(cli.ShellDeps{
		State:  state,
		Cart:   cartSvc,
		Out:    os.Stdout,
		Logger: log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := shell.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("storefront")
	}
}
