package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/config"
	"github.com/participa-tere/app-participa/internal/handlers"
	"github.com/participa-tere/app-participa/internal/logging"
	"github.com/participa-tere/app-participa/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsConfig_AllOrigins(t *testing.T) {
	c := corsConfig(&config.Config{CORSAllowedOrigins: []string{"*"}})

	assert.True(t, c.AllowAllOrigins)
	assert.Empty(t, c.AllowOrigins)
	assert.Contains(t, c.AllowHeaders, "X-Request-ID")
	assert.Contains(t, c.ExposeHeaders, "Retry-After")
	assert.NoError(t, c.Validate())
}

func TestCorsConfig_ExplicitOrigins(t *testing.T) {
	origins := []string{"https://participa.teresopolis.rj.gov.br", "http://localhost:5173"}
	c := corsConfig(&config.Config{CORSAllowedOrigins: origins})

	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, origins, c.AllowOrigins)
	assert.NoError(t, c.Validate())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	forms := handlers.NewFormHandlers(logging.Logger, services.NewSubmitValidator(logging.Logger))
	limiter := services.NewFormRateLimiter(10, logging.Logger)
	return newRouter(&config.Config{CORSAllowedOrigins: []string{"*"}}, forms, limiter)
}

func TestNewRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestNewRouter_Metrics(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "app_participa_active_connections")
}

func TestNewRouter_SwaggerDoc(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Participa Terê API")
	assert.Contains(t, body, "/forms/login/validate")
	assert.Contains(t, body, "/identifier/classify")
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/mask/cpf", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
