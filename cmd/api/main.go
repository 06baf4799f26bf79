package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/api"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/config"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, os.Stdout)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := metricRepository(ctx, cfg)
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com o banco")
		}
	}()

	metricService := metrics.NewService(repo)

	server, err := api.New(cfg, metricService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// metricRepository cria o repositório; falha de conexão no startup é registrada
// e o processo segue, as consultas passam a responder 500 até o banco voltar
func metricRepository(ctx context.Context, cfg *config.Config) repository.MetricRepository {
	repo, err := repository.NewMetricRepositoryFromConfig(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o banco de dados")
	}

	fields := logrus.Fields{"driver": cfg.Database.Driver}
	if err := repo.Ping(ctx); err != nil {
		logrus.WithFields(fields).WithError(err).Error("Erro ao testar conexão com o banco de dados")
		return repo
	}

	logrus.WithFields(fields).Info("Conexão com o banco de dados estabelecida com sucesso")
	return repo
}
