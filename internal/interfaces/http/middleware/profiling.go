package middleware

import (
	"context"
	"strings"

	"github.com/facultyfeedback/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// ProfileLabels tags CPU and allocation samples taken during a request with
// the matched route and method, so a flame graph can be filtered down to
// e.g. POST /sessions/:id/submit. Requests whose path starts with one of
// skip are left untagged. When disabled the handler is a pass-through.
func ProfileLabels(enabled bool, skip ...string) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if hasAnyPrefix(c.Request.URL.Path, skip) {
			c.Next()
			return
		}
		telemetry.WithRouteLabels(c.Request.Context(), c.FullPath(), c.Request.Method, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
