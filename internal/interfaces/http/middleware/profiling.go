// Package middleware provides the HTTP middleware chain of the ledger API.
package middleware

import (
	"context"
	"strings"

	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Profiling label names
const (
	ProfilingLabelRoute    = "route"
	ProfilingLabelMethod   = "method"
	ProfilingLabelResource = "resource"
	ProfilingLabelTenantID = "tenant_id"
)

// Profiling attaches pprof labels (route, method, resource, tenant) to the
// request goroutine so continuous profiles can be filtered per endpoint.
// Must run after Tenant.
func Profiling(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" || route == "/health" || route == "/metrics" || strings.HasPrefix(route, "/swagger") {
			c.Next()
			return
		}

		kv := []string{
			ProfilingLabelMethod, c.Request.Method,
			ProfilingLabelRoute, route,
		}
		if resource := resourceFromRoute(route); resource != "" {
			kv = append(kv, ProfilingLabelResource, resource)
		}
		if tenantID := GetTenantID(c); tenantID != uuid.Nil {
			kv = append(kv, ProfilingLabelTenantID, tenantID.String())
		}

		telemetry.WithProfilingLabels(c.Request.Context(), func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		}, kv...)
	}
}

// resourceFromRoute derives the resource name of a route,
// e.g. "/api/v1/finance/advance-charges/:id" -> "advance-charges"
func resourceFromRoute(route string) string {
	resource := ""
	for _, part := range strings.Split(route, "/") {
		if part == "" || part == "api" || isVersionSegment(part) ||
			strings.HasPrefix(part, ":") || strings.HasPrefix(part, "*") {
			continue
		}
		resource = part
		if part != "finance" && part != "partner" && part != "system" {
			break
		}
	}
	return resource
}

// isVersionSegment reports whether a path segment looks like v1, v2, ...
func isVersionSegment(segment string) bool {
	if len(segment) < 2 || segment[0] != 'v' {
		return false
	}
	for i := 1; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return false
		}
	}
	return true
}
