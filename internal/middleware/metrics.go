package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ibuttimer/fyyur/internal/service"
)

const unmatchedRoute = "unmatched"

// MetricsOption tunes the request metrics middleware.
type MetricsOption func(*metricsOptions)

type metricsOptions struct {
	skip map[string]struct{}
}

// SkipRoutes excludes the given route patterns, such as the scrape endpoint, from
// request metrics.
func SkipRoutes(routes ...string) MetricsOption {
	return func(o *metricsOptions) {
		for _, route := range routes {
			o.skip[route] = struct{}{}
		}
	}
}

// Metrics records one observation per request, labelled by method, route pattern and
// status. Labels only ever take bounded values.
func Metrics(metricsSvc *service.MetricsService, opts ...MetricsOption) gin.HandlerFunc {
	cfg := metricsOptions{skip: map[string]struct{}{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := routeLabel(c)
		if _, skip := cfg.skip[route]; skip {
			return
		}
		metricsSvc.ObserveHTTPRequest(methodLabel(c.Request.Method), route, c.Writer.Status(), time.Since(start))
	}
}

// routeLabel uses the matched pattern, never the raw path, so ids do not leak into
// series names.
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}

func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return method
	default:
		return "OTHER"
	}
}
