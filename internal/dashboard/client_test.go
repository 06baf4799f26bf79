package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

func newTestServer(t *testing.T, status int, body string, gotQuery *url.Values, gotPath *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.Query()
		}
		if gotPath != nil {
			*gotPath = r.URL.Path
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Fetch(t *testing.T) {
	var query url.Values
	var path string
	srv := newTestServer(t, http.StatusOK,
		`{"success":true,"data":[{"product":"Product 5","revenue":77044,"conversionRate":1.42}]}`,
		&query, &path)

	client := NewClient(ClientConfig{BaseURL: srv.URL + "/api/"})

	var out []domain.ProductMetric
	params := url.Values{"sortBy": {"revenue"}, "order": {"desc"}}
	err := client.Fetch(context.Background(), domain.CategoryProducts, params, &out)

	require.NoError(t, err)
	assert.Equal(t, "/api/products", path)
	assert.Equal(t, "revenue", query.Get("sortBy"))
	assert.Equal(t, "desc", query.Get("order"))
	require.Len(t, out, 1)
	assert.Equal(t, "Product 5", out[0].Product)
	assert.Equal(t, 77044.0, out[0].Revenue)
}

func TestClient_FetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "mensagem do envelope",
			status:  http.StatusInternalServerError,
			body:    `{"success":false,"code":"SRV_002","message":"Server error while fetching marketing data"}`,
			wantMsg: "Server error while fetching marketing data",
		},
		{
			name:    "corpo sem envelope",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantMsg: "Failed to fetch marketing",
		},
		{
			name:    "envelope sem mensagem",
			status:  http.StatusNotFound,
			body:    `{"success":false}`,
			wantMsg: "Failed to fetch marketing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body, nil, nil)
			client := NewClient(ClientConfig{BaseURL: srv.URL})

			var out []domain.MarketingChannelMetric
			err := client.Fetch(context.Background(), domain.CategoryMarketing, nil, &out)

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())

			var fetchErr *FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.status, fetchErr.Status)
		})
	}
}

func TestClient_FetchUnreachable(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:1"})

	var out []domain.StateMetric
	err := client.Fetch(context.Background(), domain.CategoryStates, nil, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to fetch states")
}

func TestClient_Health(t *testing.T) {
	var path string
	srv := newTestServer(t, http.StatusOK,
		`{"success":true,"status":"OK","message":"E-commerce Dashboard API is running"}`, nil, &path)

	msg, err := NewClient(ClientConfig{BaseURL: srv.URL + "/api"}).Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/api/health", path)
	assert.Equal(t, "E-commerce Dashboard API is running", msg)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(ClientConfig{})

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultTimeout, client.client.Timeout)
}
