package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibuttimer/fyyur/internal/handler"
	"github.com/ibuttimer/fyyur/internal/models"
	"github.com/ibuttimer/fyyur/internal/service"
)

func newTestEngine(t *testing.T) (*gin.Engine, *service.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := service.NewTokenService(service.TokenConfig{Secret: "test-secret", Issuer: "fyyur", Expiry: time.Minute})
	metrics := service.NewMetricsService()
	engine := New(Options{
		Metrics: metrics,
		Tokens:  tokens,
		Shows:   handler.NewShowHandler(nil),
		Artists: handler.NewArtistHandler(nil, nil),
		Venues:  handler.NewVenueHandler(nil),
		System:  handler.NewMetricsHandler(metrics, nil),
	})
	return engine, tokens
}

func serve(engine http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRoutesRegistered(t *testing.T) {
	engine, _ := newTestEngine(t)

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"GET /system/metrics",
		"GET /api/v1/shows",
		"POST /api/v1/shows",
		"POST /api/v1/shows/verify",
		"GET /api/v1/shows/:id",
		"GET /api/v1/artists/:id",
		"PUT /api/v1/artists/:id/genres",
		"GET /api/v1/artists/:id/availability",
		"POST /api/v1/artists/:id/availability",
		"GET /api/v1/artists/:id/availability/history",
		"GET /api/v1/venues/:id",
		"GET /api/v1/venues/:id/bookings",
		"PUT /api/v1/venues/:id/genres",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine, tokens := newTestEngine(t)

	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodPost, "/api/v1/shows", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodPost, "/api/v1/artists/a1/availability", "").Code)

	viewer, _, err := tokens.Issue("u1", models.RoleViewer, "viewer@example.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, serve(engine, http.MethodPost, "/api/v1/shows", viewer).Code)
	assert.Equal(t, http.StatusForbidden, serve(engine, http.MethodPut, "/api/v1/venues/v1/genres", viewer).Code)

	artist, _, err := tokens.Issue("a2", models.RoleArtist, "artist@example.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, serve(engine, http.MethodPut, "/api/v1/artists/a1/genres", artist).Code)
}

func TestSystemRoutes(t *testing.T) {
	engine, _ := newTestEngine(t)

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/metrics", "").Code)
}

func TestHealthAndScrapeRoutesAreNotCounted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	engine := New(Options{Metrics: metrics, System: handler.NewMetricsHandler(metrics, nil)})

	for _, path := range []string{"/health", "/ready", "/metrics", "/system/metrics"} {
		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, path, "").Code)
	}
	assert.Equal(t, uint64(1), metrics.Snapshot().RequestsTotal)
}
