package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/log"
)

// ListMetrics é o handler único de leitura das categorias de lista
func ListMetrics(service metrics.Service, binding metrics.Binding) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("category", binding.Category.String())

		params, err := parseListParams(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn(binding.Category.String() + ": invalid query parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid query parameters", err.Error())
			return
		}

		records, err := service.List(r.Context(), binding.Category, params)
		if err != nil {
			logger.WithError(err).Error(binding.Category.String() + ": failed to fetch records")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fmt.Sprintf("Server error while fetching %s data", binding.Category), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, response{Success: true, Data: records})
	})
}
