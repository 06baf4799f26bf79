package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/api"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/config"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard/views"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard/web"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/log"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/utils"
)

type cli struct {
	APIURL string `name:"api-url" help:"Override DASHBOARD_API_URL."`

	Render renderCmd `cmd:"" help:"Fetch every category and write the dashboard as a static HTML page."`
	Serve  serveCmd  `cmd:"" help:"Serve the dashboard over HTTP."`
	Health healthCmd `cmd:"" help:"Check that the dashboard API is reachable."`
}

type renderCmd struct {
	Out       string `short:"o" help:"Output file, '-' for stdout." default:"dashboard.html"`
	Preset    string `help:"Date preset (last7days, last30days, last90days, thismonth, lastmonth)."`
	Start     string `help:"Start date, YYYY-MM-DD."`
	End       string `help:"End date, YYYY-MM-DD."`
	KPI       string `help:"Selected KPI." default:"ecommerceRevenue"`
	Breakdown string `help:"Revenue chart breakdown." enum:"daily,weekly,monthly" default:"weekly"`
}

type serveCmd struct {
	Addr        string `help:"Listen address, defaults to DASHBOARD_ADDR."`
	RefreshCron string `name:"refresh-cron" help:"Cron for refreshing the default view, defaults to DASHBOARD_REFRESH_CRON."`
}

type healthCmd struct{}

func main() {
	var args cli
	kctx := kong.Parse(&args,
		kong.Name("dashboard"),
		kong.Description("E-commerce analytics dashboard."),
		kong.UsageOnError(),
	)

	cfg, err := config.NewConfig()
	kctx.FatalIfErrorf(err)
	if args.APIURL != "" {
		cfg.Dashboard.APIURL = args.APIURL
	}

	log.Setup(cfg.App.LogLevel, os.Stderr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kctx.BindTo(ctx, (*context.Context)(nil))
	err = kctx.Run(cfg)
	kctx.FatalIfErrorf(err)
}

func newClient(cfg *config.Config) *dashboard.Client {
	return dashboard.NewClient(dashboard.ClientConfig{
		BaseURL: cfg.Dashboard.APIURL,
		Timeout: cfg.Dashboard.Timeout,
	})
}

func newRenderer(cfg *config.Config) *views.Renderer {
	return views.NewRenderer(views.WithMapType(cfg.Dashboard.MapType))
}

func (cmd *renderCmd) Run(ctx context.Context, cfg *config.Config) error {
	filters, err := cmd.filters(time.Now())
	if err != nil {
		return err
	}

	store := dashboard.NewStore(newClient(cfg), nil)
	store.FetchAll(ctx, filters)

	var out io.Writer = os.Stdout
	if cmd.Out != "-" {
		f, err := os.Create(cmd.Out)
		if err != nil {
			return fmt.Errorf("error creating %s: %w", cmd.Out, err)
		}
		defer f.Close()
		out = f
	}

	if err := newRenderer(cfg).Page(out, store.Cache().Snapshot(), filters); err != nil {
		return fmt.Errorf("error rendering dashboard: %w", err)
	}

	logrus.WithField("out", cmd.Out).Info("Dashboard gerado")
	return nil
}

// filters traduz as flags para o estado de filtros; datas explícitas prevalecem sobre o preset
func (cmd *renderCmd) filters(now time.Time) (dashboard.Filters, error) {
	filters := dashboard.NewFilters().
		WithSelectedKPI(cmd.KPI).
		WithBreakdown(domain.CategoryRevenue, dashboard.Breakdown(cmd.Breakdown))

	if cmd.Preset != "" {
		var ok bool
		filters, ok = filters.ApplyPreset(cmd.Preset, now)
		if !ok {
			return filters, fmt.Errorf("unknown preset %q", cmd.Preset)
		}
	}

	if cmd.Start == "" && cmd.End == "" {
		return filters, nil
	}

	start, err := utils.ParseDate(cmd.Start)
	if err != nil {
		return filters, err
	}
	end, err := utils.ParseDate(cmd.End)
	if err != nil {
		return filters, err
	}
	return filters.WithDateRange(start, end), nil
}

func (cmd *serveCmd) Run(ctx context.Context, cfg *config.Config) error {
	if cmd.RefreshCron != "" {
		cfg.Dashboard.RefreshCron = cmd.RefreshCron
	}
	addr := cmd.Addr
	if addr == "" {
		addr = cfg.Dashboard.Addr
	}

	client := newClient(cfg)
	deps := web.Dependencies{
		Fetcher:  client,
		Renderer: newRenderer(cfg),
	}

	// sem cron cada requisição busca seus próprios dados
	if cfg.Dashboard.RefreshCron != "" {
		shared := dashboard.NewCache()
		refresher := scheduler.NewDashboardRefreshService(dashboard.NewStore(client, shared), shared, cfg)
		if err := refresher.Start(ctx); err != nil {
			return err
		}
		refresher.TriggerManualSync(ctx)

		deps.Shared = shared
		deps.Refresher = refresher
	}

	return api.NewServer(addr, web.NewHandler(deps)).Run(ctx)
}

func (cmd *healthCmd) Run(ctx context.Context, cfg *config.Config) error {
	message, err := newClient(cfg).Health(ctx)
	if err != nil {
		return err
	}
	fmt.Println(utils.PrettyJson(map[string]string{
		"api":     cfg.Dashboard.APIURL,
		"message": message,
	}))
	return nil
}
