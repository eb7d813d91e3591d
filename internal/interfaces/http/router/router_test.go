package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/erp/ledger/internal/interfaces/http/handler"
	"github.com/erp/ledger/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type tenantEcho struct{}

func (tenantEcho) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/echo/tenant", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetTenantID(c).String())
	})
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	var hit bool
	r := NewRouter(engine, WithAPIVersion("v2")).
		Use(func(c *gin.Context) { hit = true; c.Next() }).
		Register(tenantEcho{})
	r.Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v2/echo/tenant", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, hit)
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP:    config.HTTPConfig{MaxBodySize: 1 << 20, CORSAllowOrigins: []string{"https://app.example.com"}},
		Swagger: config.SwaggerConfig{Enabled: false},
	}
}

func TestNewEngine(t *testing.T) {
	system := handler.NewSystemHandler("ledger", "test")
	system.AddCheck("database", func(context.Context) error { return nil })
	engine := NewEngine(EngineOptions{
		Config:     testConfig(),
		Metrics:    middleware.NewHTTPMetrics(prometheus.NewRegistry()),
		System:     system,
		Tenant:     middleware.DefaultTenantConfig(),
		Registrars: []RouteRegistrar{tenantEcho{}},
	})

	t.Run("health needs no tenant", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("ping needs no tenant", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("api routes are tenant scoped", func(t *testing.T) {
		tenantID := uuid.New()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/echo/tenant", nil)
		req.Header.Set(middleware.TenantHeader, tenantID.String())
		engine.ServeHTTP(w, req)
		assert.Equal(t, tenantID.String(), w.Body.String())

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/echo/tenant", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("metrics exposed", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ledger_http_requests_total")
	})

	t.Run("swagger disabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		engine.GET("/boom", func(*gin.Context) { panic("boom") })
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
	})
}
