package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics registra contagem e latência por rota. Caminhos fora de routes
// são agrupados para não explodir a cardinalidade.
func Metrics(routes map[string]struct{}) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			route := r.URL.Path
			if _, ok := routes[route]; !ok {
				route = unmatchedRoute
			}
			metrics.RecordHTTPRequest(r.Method, route, lrw.statusCode, time.Since(start))
		})
	}
}
