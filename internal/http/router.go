package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/geocoder89/eventos/internal/config"
	"github.com/geocoder89/eventos/internal/http/handlers"
	"github.com/geocoder89/eventos/internal/http/middlewares"
	"github.com/geocoder89/eventos/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Repo     handlers.EventsRepository
	Ping     func(ctx context.Context) error
	Registry *prometheus.Registry
	Prom     *observability.Prom
}

func NewRouter(log *slog.Logger, cfg config.Config, deps Deps) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	prom := deps.Prom
	if prom == nil {
		prom = observability.NewProm(reg)
	}

	// middleware

	r.Use(middlewares.Recovery(log))
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(prom.GinHandleMiddleware())
	r.Use(middlewares.SecurityHeaders(cfg.Env))
	r.Use(middlewares.CORSMiddleware(middlewares.CORSConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: cfg.CORSAllowedMethods,
		MaxAge:         cfg.CORSMaxAge,
	}))

	// health
	h := handlers.NewHealthHandler(deps.Ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	eventsHandler := handlers.NewEventsHandler(deps.Repo,
		handlers.WithLogger(log),
		handlers.WithProm(prom),
		handlers.WithListCache(cfg.ListCacheTTL),
	)

	eventos := r.Group("/eventos")
	eventos.Use(middlewares.MaxBodyBytes(cfg.MaxBodyBytes))

	if cfg.RateLimitPerMinute > 0 {
		rl := middlewares.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		eventos.POST("", rl.Middleware(middlewares.KeyByIP), eventsHandler.CreateEvent)
	} else {
		eventos.POST("", eventsHandler.CreateEvent)
	}
	eventos.GET("", eventsHandler.ListEvents)

	return r
}
