package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/config"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

// Refresher busca todas as categorias para um estado de filtros
//
//go:generate mockgen -source=dashboard_refresh.go -destination=mocks/dashboard_refresh.go -package=mocks
type Refresher interface {
	FetchAll(ctx context.Context, filters dashboard.Filters)
}

// DashboardRefreshConfig representa a configuração do agendador de atualização do dashboard
type DashboardRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Timeout      time.Duration
}

// DashboardRefreshService mantém o cache da visão padrão do dashboard atualizado
type DashboardRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DashboardRefreshConfig
	store               Refresher
	cache               *dashboard.Cache
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncFailures    []string
}

// NewDashboardRefreshService cria o serviço; sem cron configurado só a atualização manual fica disponível
func NewDashboardRefreshService(store Refresher, cache *dashboard.Cache, appConfig *config.Config) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: appConfig.Dashboard.RefreshCron,
		SyncEnabled:  appConfig.Dashboard.RefreshCron != "",
		Timeout:      appConfig.Dashboard.Timeout,
	}
	if refreshConfig.Timeout <= 0 {
		refreshConfig.Timeout = dashboard.DefaultTimeout
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
		"timeout":       refreshConfig.Timeout.String(),
	}).Info("scheduler: dashboard refresh configuration loaded")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    refreshConfig,
		store:     store,
		cache:     cache,
	}
}

// Start agenda a atualização periódica e para o agendador quando ctx é cancelado
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: dashboard refresh disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting dashboard refresh")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("error scheduling dashboard refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping dashboard refresh")
		s.scheduler.Stop()
	}()

	return nil
}

// refresh busca a visão padrão. Execuções sobrepostas são ignoradas.
func (s *DashboardRefreshService) refresh(ctx context.Context) {
	if !s.claim() {
		logrus.Info("scheduler: dashboard refresh already running, skipping")
		return
	}
	s.run(ctx)
}

// claim marca uma execução como em andamento; false se já houver outra
func (s *DashboardRefreshService) claim() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// run executa uma atualização já reservada por claim
func (s *DashboardRefreshService) run(ctx context.Context) {
	startTime := time.Now()

	refreshCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	s.store.FetchAll(refreshCtx, dashboard.NewFilters())

	failures := s.failedCategories()

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncFailures = failures
	s.syncMutex.Unlock()

	entry := logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"failures": len(failures),
	})
	if len(failures) > 0 {
		entry.WithField("categories", failures).Warn("scheduler: dashboard refresh completed with failures")
		return
	}
	entry.Info("scheduler: dashboard refresh completed")
}

func (s *DashboardRefreshService) failedCategories() []string {
	if s.cache == nil {
		return nil
	}
	var failed []string
	snapshot := s.cache.Snapshot()
	for _, category := range domain.Categories {
		if snapshot[category].HasError() {
			failed = append(failed, category.String())
		}
	}
	return failed
}

// TriggerManualSync dispara uma atualização fora do agendamento; devolve false se já houver uma em andamento
func (s *DashboardRefreshService) TriggerManualSync(ctx context.Context) bool {
	if !s.claim() {
		logrus.Info("scheduler: dashboard refresh already running, ignoring manual request")
		return false
	}

	logrus.Info("scheduler: starting manual dashboard refresh")
	go s.run(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual da atualização
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
