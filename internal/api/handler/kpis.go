package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/log"
)

const (
	msgKPINotFound     = "No KPI data found"
	msgKPICreated      = "KPI data created successfully"
	msgKPICreateFailed = "Error creating KPI data"
	msgKPIFetchFailed  = "Server error while fetching KPI data"
)

// GetKPIs devolve o snapshot mais recente, opcionalmente dentro da janela startDate/endDate
func GetKPIs(service metrics.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("category", domain.CategoryKPIs.String())

		dateRange, err := parseDateRange(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("kpis: invalid date range")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid query parameters", err.Error())
			return
		}

		snapshot, err := service.MostRecentKPI(r.Context(), dateRange)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, msgKPINotFound, nil)
				return
			}
			logger.WithError(err).Error("kpis: failed to fetch snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, msgKPIFetchFailed, nil)
			return
		}

		writeJSON(w, r, http.StatusOK, response{Success: true, Data: snapshot})
	})
}

// CreateKPI ingere um novo snapshot
func CreateKPI(service metrics.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("category", domain.CategoryKPIs.String())

		var input domain.KPISnapshotInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithError(err).Warn("kpis: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, msgKPICreateFailed, err.Error())
			return
		}

		snapshot, err := service.CreateKPI(r.Context(), input)
		if err != nil {
			var validationErr *domain.ValidationError
			if errors.As(err, &validationErr) {
				logger.WithError(err).Warn("kpis: rejected snapshot")
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, msgKPICreateFailed, validationErr.Error())
				return
			}
			// falha de escrita também responde 400
			logger.WithError(err).Error("kpis: failed to store snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, msgKPICreateFailed, err.Error())
			return
		}

		logger.WithField("store_id", snapshot.ID.Hex()).Info("kpis: snapshot created")
		writeJSON(w, r, http.StatusCreated, response{Success: true, Data: snapshot, Message: msgKPICreated})
	})
}
