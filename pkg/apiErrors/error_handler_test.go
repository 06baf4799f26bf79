package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		details    any
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation error carries details",
			code:       ErrInvalidRequest,
			details:    "ecommerceRevenue is required",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"code":"VAL_001","message":"msg","error":"ecommerceRevenue is required"}`,
		},
		{
			name:       "not found without details",
			code:       ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"code":"RES_001","message":"msg"}`,
		},
		{
			name:       "unknown code falls back to 500",
			code:       "XYZ_999",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"code":"XYZ_999","message":"msg"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "msg", tt.details)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
