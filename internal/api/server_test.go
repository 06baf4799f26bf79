package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/config"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/usecases/metrics/mocks"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().Bindings().Return(metrics.NewService(nil).Bindings())
	service.EXPECT().
		List(gomock.Any(), domain.CategoryDevices, gomock.Any()).
		Return(&[]domain.DeviceMetric{{Device: domain.DeviceDesktop, Revenue: 118971, ConversionRate: 1.47}}, nil)

	cfg := &config.Config{Server: config.Server{FrontendURL: "http://localhost:3000"}}
	h := NewHandler(cfg, service)

	t.Run("lista com CORS da origem configurada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Body.String(), `"device":"Desktop"`)
	})

	t.Run("exposição prometheus", func(t *testing.T) {
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "http_requests_total")
	})
}
