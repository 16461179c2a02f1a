package health

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

	"menu-recommendation/internal/infrastructure/config"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func newRouter(p Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		App:     config.AppConfig{Version: "1.2.3"},
		Storage: config.StorageConfig{Driver: config.StorageMemory},
	}
	h := NewHandler(cfg, p, 98)

	r := gin.New()
	r.GET("/health", h.HealthCheck)
	r.GET("/ready", h.ReadinessCheck)
	r.GET("/live", h.LivenessCheck)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	w := get(newRouter(fakePinger{}), "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "memory", resp.Storage)
	assert.Equal(t, 98, resp.CatalogSize)
	assert.Contains(t, resp.Runtime, "goroutines")
}

func TestReadinessCheck(t *testing.T) {
	assert.Equal(t, http.StatusOK, get(newRouter(fakePinger{}), "/ready").Code)

	w := get(newRouter(fakePinger{err: errors.New("down")}), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "SERVICE_UNAVAILABLE")
}

func TestLivenessCheck(t *testing.T) {
	w := get(newRouter(fakePinger{err: errors.New("down")}), "/live")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}
