package router

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-desk/internal/config"
	"github.com/jwalitptl/clinic-desk/internal/handler"
	"github.com/jwalitptl/clinic-desk/internal/middleware"
	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
	"github.com/jwalitptl/clinic-desk/pkg/httputil"
	"github.com/jwalitptl/clinic-desk/pkg/metrics"
	"github.com/jwalitptl/clinic-desk/pkg/validator"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine  *gin.Engine
	h       *handler.Handler
	routes  []Handler
	metrics *metrics.Metrics
	config  config.Config
}

// NewRouter builds the engine and its middleware chain. m may be nil when
// metrics are disabled.
func NewRouter(cfg config.Config, templates *template.Template, m *metrics.Metrics, h *handler.Handler, routes ...Handler) (*Router, error) {
	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Configure()

	engine := gin.New()
	// Client IPs key the rate limiter, so forwarded headers are honoured
	// only from configured proxies.
	if err := engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	engine.SetHTMLTemplate(templates)
	engine.HandleMethodNotAllowed = true

	r := &Router{
		engine:  engine,
		h:       h,
		routes:  routes,
		metrics: m,
		config:  cfg,
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
	)
	// Metrics wraps Recovery so panics are counted as 500s.
	if m != nil {
		engine.Use(middleware.Metrics(m))
	}
	engine.Use(middleware.Recovery())

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   cfg.Server.RateLimitRPS,
		Burst: cfg.Server.RateLimitBurst,
	})
	engine.Use(
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.SizeLimit(cfg.Server.MaxBodyBytes),
		middleware.Timeout(cfg.Server.RequestTimeout),
		rateLimiter.RateLimit(),
		middleware.ErrorHandler(),
	)

	engine.NoRoute(func(c *gin.Context) {
		httputil.RespondWithError(c, apperrors.NotFound("page", nil))
	})
	engine.NoMethod(func(c *gin.Context) {
		httputil.RenderError(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r, nil
}

func (r *Router) Setup() {
	root := r.engine.Group("")

	r.h.RegisterRoutes(root)
	if r.metrics != nil && r.config.Metrics.Enabled {
		root.GET(r.config.Metrics.Path, r.h.MetricsHandler)
	}

	for _, h := range r.routes {
		h.RegisterRoutes(root)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
