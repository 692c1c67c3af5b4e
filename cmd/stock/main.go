package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/beverage-stock/internal/interfaces/cli"
	"github.com/jhoicas/beverage-stock/pkg/config"
	"github.com/jhoicas/beverage-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	app := cli.NewApp(cli.AppDeps{Config: cfg, Log: log.Zerolog()})
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}
