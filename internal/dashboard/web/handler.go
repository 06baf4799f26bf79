// Package web expõe o dashboard renderizado por HTTP.
package web

import (
	"bytes"
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard/views"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/log"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Refresher controla a atualização da visão padrão em segundo plano
//
//go:generate mockgen -source=handler.go -destination=mocks/handler.go -package=mocks
type Refresher interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

type Dependencies struct {
	Fetcher  dashboard.Fetcher
	Renderer *views.Renderer
	// Shared é o cache mantido pelo refresh agendado. Só atende a visão padrão.
	Shared    *dashboard.Cache
	Refresher Refresher
}

type message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewHandler monta as rotas do dashboard com a mesma cadeia de middlewares da API
func NewHandler(deps Dependencies) http.Handler {
	routes := []router.Route{
		{Path: "/", Method: http.MethodGet, Handler: PageHandler(deps)},
	}
	if deps.Refresher != nil {
		routes = append(routes,
			router.Route{Path: "/refresh", Method: http.MethodPost, Handler: RefreshHandler(deps.Refresher)},
			router.Route{Path: "/refresh/status", Method: http.MethodGet, Handler: RefreshStatusHandler(deps.Refresher)},
		)
	}

	rt := router.New(router.WithRoutes(routes...))
	rt.NotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Route not found", nil)
	}))

	return alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Metrics(rt.Paths()),
	).Then(rt)
}

// PageHandler renderiza o dashboard completo para os filtros da query string
func PageHandler(deps Dependencies) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := dashboard.ParseFilters(r.URL.Query())
		logger := log.ForContext(r.Context())

		slots, fromShared := sharedSlots(deps.Shared, filters)
		if !fromShared {
			store := dashboard.NewStore(deps.Fetcher, nil)
			store.FetchAll(r.Context(), filters)
			slots = store.Cache().Snapshot()
		}
		logger.WithField("shared", fromShared).Debug("web: rendering dashboard")

		var buf bytes.Buffer
		if err := deps.Renderer.Page(&buf, slots, filters); err != nil {
			logger.WithError(err).Error("web: failed to render dashboard")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to render dashboard", err.Error())
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	})
}

// sharedSlots devolve o cache compartilhado apenas para a visão padrão e
// quando todas as categorias já foram resolvidas ao menos uma vez
func sharedSlots(cache *dashboard.Cache, filters dashboard.Filters) (map[domain.Category]dashboard.Slot, bool) {
	if cache == nil || len(filters.Query()) > 0 {
		return nil, false
	}
	snapshot := cache.Snapshot()
	for _, category := range domain.Categories {
		slot := snapshot[category]
		if slot.IsLoading || (slot.Data == nil && !slot.HasError()) {
			return nil, false
		}
	}
	return snapshot, true
}

func RefreshHandler(refresher Refresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !refresher.TriggerManualSync(r.Context()) {
			writeJSON(w, r, http.StatusConflict, message{Success: false, Message: "Refresh already running"})
			return
		}
		writeJSON(w, r, http.StatusAccepted, message{Success: true, Message: "Refresh started"})
	})
}

func RefreshStatusHandler(refresher Refresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, message{Success: true, Message: "OK", Data: refresher.GetStatus()})
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("web: failed to encode body")
	}
}
