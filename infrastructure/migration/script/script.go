package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/config"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/usecases/seeding"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/log"
)

type cli struct {
	Driver  string        `help:"Override DATABASE_DRIVER (mongodb or postgres)."`
	Timeout time.Duration `help:"Overall timeout for the command." default:"60s"`

	Seed    seedCmd    `cmd:"" help:"Clear every collection and insert the sample dataset."`
	Migrate migrateCmd `cmd:"" help:"Create the PostgreSQL tables for every collection."`
	Clear   clearCmd   `cmd:"" help:"Delete every document from every collection."`
}

type seedCmd struct{}

type migrateCmd struct{}

type clearCmd struct{}

func main() {
	var args cli
	kctx := kong.Parse(&args,
		kong.Name("script"),
		kong.Description("Seed and migration utility for the e-commerce dashboard store."),
		kong.UsageOnError(),
	)

	cfg, err := config.NewConfig()
	kctx.FatalIfErrorf(err)
	if args.Driver != "" {
		cfg.Database.Driver = args.Driver
	}

	log.Setup(cfg.App.LogLevel, os.Stdout)
	logrus.Info("Iniciando script de migração...")

	ctx, cancel := context.WithTimeout(context.Background(), args.Timeout)
	defer cancel()

	kctx.BindTo(ctx, (*context.Context)(nil))
	err = kctx.Run(cfg)
	kctx.FatalIfErrorf(err)
}

func (cmd *seedCmd) Run(ctx context.Context, cfg *config.Config) error {
	repo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer repo.Close(context.Background())

	seeder := seeding.NewSeeder(repo, seeding.DefaultDataset(time.Now().UTC()))
	return seeder.Run(ctx)
}

func (cmd *clearCmd) Run(ctx context.Context, cfg *config.Config) error {
	repo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer repo.Close(context.Background())

	_, err = seeding.NewSeeder(repo, seeding.Dataset{}).Clear(ctx)
	return err
}

func (cmd *migrateCmd) Run(ctx context.Context, cfg *config.Config) error {
	conn, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}

	startTime := time.Now()
	for _, collection := range repository.Collections {
		if err := repository.EnsureTable(ctx, conn, collection); err != nil {
			return err
		}
		logrus.WithField("table", collection).Info("Tabela verificada")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
	return nil
}

func openRepository(ctx context.Context, cfg *config.Config) (repository.MetricRepository, error) {
	repo, err := repository.NewMetricRepositoryFromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := repo.Ping(ctx); err != nil {
		return nil, fmt.Errorf("store unreachable (%s): %w", cfg.Database.Driver, err)
	}

	return repo, nil
}
