package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-recommendation/internal/infrastructure/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(requestid.New())
	r.Use(handlers...)
	r.POST("/echo", func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.String(http.StatusOK, string(body))
	})
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecovery(t *testing.T) {
	r := newEngine(Recovery(), Logger())

	w := do(r, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}

func TestBodySizeLimit(t *testing.T) {
	r := newEngine(BodySizeLimit(4))

	w := do(r, http.MethodPost, "/echo", "too long body")
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "PAYLOAD_TOO_LARGE")

	w = do(r, http.MethodPost, "/echo", "ok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestDeduplication(t *testing.T) {
	d := NewDeduplicator(time.Minute)
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }
	r := newEngine(d.Middleware())

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/echo", `{"a":1}`).Code)

	w := do(r, http.MethodPost, "/echo", `{"a":1}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// 본문이 다르면 다른 요청
	w = do(r, http.MethodPost, "/echo", `{"a":2}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"a":2}`, w.Body.String())

	// GET은 검사하지 않는다
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ping", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ping", "").Code)

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/echo", `{"a":1}`).Code)
	assert.Equal(t, 2, d.Size())
}

func TestDeduplicationDisabled(t *testing.T) {
	r := newEngine(NewDeduplicator(0).Middleware())

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/echo", "x").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/echo", "x").Code)
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)
	r := newEngine(rl.Middleware())

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ping", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ping", "").Code)

	w := do(r, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))

	// 다른 클라이언트는 별도 버킷
	assert.True(t, rl.Allow("10.0.0.9"))
}

func TestTimeout(t *testing.T) {
	r := newEngine(Timeout(20 * time.Millisecond))

	w := do(r, http.MethodGet, "/slow", "")
	assert.Equal(t, http.StatusRequestTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "REQUEST_TIMEOUT")

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ping", "").Code)
}

func TestMetrics(t *testing.T) {
	r := newEngine(Metrics())

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/ping", "200")
	before := testutil.ToFloat64(counter)
	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ping", "").Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	unmatched := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")
	before = testutil.ToFloat64(unmatched)
	do(r, http.MethodGet, "/nope", "")
	assert.Equal(t, before+1, testutil.ToFloat64(unmatched))
}
