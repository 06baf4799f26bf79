package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/usecases/metrics"
)

const apiPrefix = "/api"

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func KPIs(service metrics.Service) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    apiPrefix + "/kpis",
			Method:  http.MethodPost,
			Handler: CreateKPI(service),
		},
	}
}

// Metrics gera uma rota GET por categoria do registro, exceto kpis
func Metrics(service metrics.Service) []router.Route {
	var routes []router.Route
	for _, binding := range service.Bindings() {
		if binding.Category == domain.CategoryKPIs {
			continue
		}
		routes = append(routes, router.Route{
			Path:    apiPrefix + "/" + binding.Category.String(),
			Method:  http.MethodGet,
			Handler: ListMetrics(service, binding),
		})
	}
	return routes
}

func Prometheus() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}
