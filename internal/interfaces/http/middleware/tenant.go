package middleware

import (
	"net/http"
	"strings"

	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Tenant and operator headers. Authentication happens upstream; these headers
// are trusted as-is.
const (
	TenantHeader       = "X-Tenant-ID"
	OperatorIDHeader   = "X-User-ID"
	OperatorNameHeader = "X-User-Name"

	TenantIDKey     = "tenant_id"
	OperatorIDKey   = "operator_id"
	OperatorNameKey = "operator_name"
)

// TenantConfig holds configuration for the tenant middleware
type TenantConfig struct {
	// SkipPaths are exact paths or path prefixes that need no tenant
	SkipPaths []string
	// DefaultTenantID is used when the header is missing; uuid.Nil makes the header mandatory
	DefaultTenantID uuid.UUID
}

// DefaultTenantConfig returns the default tenant middleware configuration
func DefaultTenantConfig() TenantConfig {
	return TenantConfig{
		SkipPaths: []string{"/health", "/metrics", "/swagger", "/api/v1/system"},
	}
}

// Tenant resolves the tenant and operator of a request and puts them in the
// gin context and the request context.
func Tenant(cfg TenantConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip || strings.HasPrefix(path, skip+"/") {
				c.Next()
				return
			}
		}

		tenantID := cfg.DefaultTenantID
		if raw := c.GetHeader(TenantHeader); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				abortTenant(c, dto.ErrCodeInvalidInput, "Invalid X-Tenant-ID header")
				return
			}
			tenantID = parsed
		}
		if tenantID == uuid.Nil {
			abortTenant(c, dto.ErrCodeTenantRequired, "X-Tenant-ID header is required")
			return
		}

		c.Set(TenantIDKey, tenantID)
		ctx := logger.WithTenantID(c.Request.Context(), tenantID.String())

		if raw := c.GetHeader(OperatorIDHeader); raw != "" {
			operatorID, err := uuid.Parse(raw)
			if err != nil {
				abortTenant(c, dto.ErrCodeInvalidInput, "Invalid X-User-ID header")
				return
			}
			c.Set(OperatorIDKey, operatorID)
			ctx = logger.WithOperatorID(ctx, operatorID.String())
		}
		if name := strings.TrimSpace(c.GetHeader(OperatorNameHeader)); name != "" {
			c.Set(OperatorNameKey, name)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func abortTenant(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}

// GetTenantID returns the tenant resolved by Tenant, or uuid.Nil
func GetTenantID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(TenantIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetOperator returns the acting user, if the request named one
func GetOperator(c *gin.Context) (*uuid.UUID, string) {
	var id *uuid.UUID
	if v, ok := c.Get(OperatorIDKey); ok {
		if opID, ok := v.(uuid.UUID); ok {
			id = &opID
		}
	}
	return id, c.GetString(OperatorNameKey)
}
