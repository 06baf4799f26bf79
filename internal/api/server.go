package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/api/handler"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/config"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia de middlewares da API
func NewHandler(cfg *config.Config, metricService metrics.Service) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.KPIs(metricService)...),
		router.WithRoutes(handler.Metrics(metricService)...),
		router.WithRoutes(handler.Prometheus()...),
	)
	rt.NotFound(handler.NotFoundHandler())

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Metrics(rt.Paths()),
		middleware.Cors(cfg.Server.FrontendURL),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, metricService metrics.Service) (*Server, error) {
	return NewServer(cfg.Server.Addr(), NewHandler(cfg, metricService)), nil
}

// NewServer envolve qualquer handler com o ciclo de vida do servidor (Run/Shutdown)
func NewServer(addr string, h http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
