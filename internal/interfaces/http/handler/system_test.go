package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHandler_Health(t *testing.T) {
	tests := []struct {
		name       string
		cacheErr   error
		wantStatus int
		wantState  string
	}{
		{"all healthy", nil, http.StatusOK, "ok"},
		{"cache down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, "degraded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSystemHandler("ledger", "1.0.0")
			h.AddCheck("database", func(context.Context) error { return nil })
			h.AddCheck("cache", func(context.Context) error { return tt.cacheErr })

			r := gin.New()
			r.GET("/health", h.Health)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantState, resp.Status)
			assert.Equal(t, "ok", resp.Checks["database"])
			assert.Equal(t, "1.0.0", resp.Version)
		})
	}
}

func TestSystemHandler_Ping(t *testing.T) {
	h := NewSystemHandler("ledger", "1.0.0")
	r := newTestRouter(h)

	w := doRequest(r, http.MethodGet, "/api/v1/system/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, "pong", data["message"])
	assert.Equal(t, "ledger", data["service"])
}
