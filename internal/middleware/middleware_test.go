package middleware

import (
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
	"github.com/jwalitptl/clinic-desk/pkg/httputil"
	"github.com/jwalitptl/clinic-desk/pkg/metrics"
)

func newEngine(middlewares ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(template.New(httputil.ErrorTemplate).Parse(`{{.Message}}`)))
	engine.Use(middlewares...)
	return engine
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	engine := newEngine(RequestID())
	engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(HeaderXRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderXRequestID, "front-desk-1")
	rec = serve(engine, req)
	assert.Equal(t, "front-desk-1", rec.Header().Get(HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderXRequestID, strings.Repeat("x", 100))
	rec = serve(engine, req)
	assert.Len(t, rec.Header().Get(HeaderXRequestID), 36)
}

func TestErrorHandler(t *testing.T) {
	engine := newEngine(ErrorHandler())
	engine.GET("/missing", func(c *gin.Context) { _ = c.Error(apperrors.NotFound("patient", nil)) })
	engine.GET("/broken", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("failed to list: %w", apperrors.Storage("list patients", fmt.Errorf("database is locked"))))
	})
	engine.GET("/written", func(c *gin.Context) {
		c.String(http.StatusOK, "done")
		_ = c.Error(fmt.Errorf("late failure"))
	})

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "patient not found", rec.Body.String())

	rec = serve(engine, httptest.NewRequest(http.MethodGet, "/broken", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", rec.Body.String())

	rec = serve(engine, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestRecovery(t *testing.T) {
	engine := newEngine(Recovery())
	engine.GET("/panic", func(c *gin.Context) { panic("template exploded") })

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", rec.Body.String())
}

func TestSizeLimit(t *testing.T) {
	engine := newEngine(SizeLimit(16))
	engine.POST("/", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusBadRequest, "read failed")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	rec := serve(engine, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=Jo")))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(engine, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 64)))
	req.ContentLength = -1
	rec = serve(engine, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{RPS: 1, Burst: 2})
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	engine := newEngine(limiter.RateLimit())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, serve(engine, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.9:4000"
	assert.Equal(t, http.StatusNoContent, serve(engine, other).Code)

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, serve(engine, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestRateLimitDisabled(t *testing.T) {
	engine := newEngine(NewRateLimiter(RateLimiterConfig{}).RateLimit())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusNoContent, serve(engine, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	engine := newEngine(SecurityHeaders(DefaultSecurityConfig()))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "form-action 'self'")
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	m := metrics.New("clinic")
	engine := newEngine(Metrics(m))
	engine.GET("/reception/:patient_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(engine, httptest.NewRequest(http.MethodGet, "/reception/1", nil))
	serve(engine, httptest.NewRequest(http.MethodGet, "/reception/2", nil))
	serve(engine, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues(http.MethodGet, "/reception/:patient_id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestTimeoutSetsDeadline(t *testing.T) {
	engine := newEngine(Timeout(time.Second))
	engine.GET("/", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, serve(engine, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}
