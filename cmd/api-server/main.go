package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"greenkitchen/database"
	"greenkitchen/internal/config"
	"greenkitchen/internal/logger"
	"greenkitchen/internal/server"
)

func main() {
	app := &cli.App{
		Name:  "greenkitchen",
		Usage: "recipe sharing API",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "apply schema migrations before serving", Value: true},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply schema migrations and exit",
				Action: migrate,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, *database.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}
	return cfg, log, db, nil
}

func serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer log.Sync()
	defer db.Close()

	if c.Bool("migrate") {
		if err := database.Migrate(db.Gorm); err != nil {
			return err
		}
		log.Info("database migrations applied")
	}

	return server.New(cfg, db.Gorm, log).Run(ctx)
}

func migrate(c *cli.Context) error {
	_, log, db, err := bootstrap(c.Context)
	if err != nil {
		return err
	}
	defer log.Sync()
	defer db.Close()

	if err := database.Migrate(db.Gorm); err != nil {
		return err
	}
	log.Info("database migrations applied")
	return nil
}
