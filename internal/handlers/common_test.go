package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/logging"
	"github.com/participa-tere/app-participa/internal/middleware"
	"github.com/participa-tere/app-participa/internal/services"
	"github.com/stretchr/testify/require"
)

// setupRouter builds the /v1 API the way main does, with the real form validator
func setupRouter(t *testing.T, limiter middleware.FormLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	forms := NewFormHandlers(logging.Logger, services.NewSubmitValidator(logging.Logger))
	RegisterRoutes(router.Group("/v1"), forms, limiter)
	return router
}

// postJSON sends body (a string is sent verbatim) and returns the recorder
func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
