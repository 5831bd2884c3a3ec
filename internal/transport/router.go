package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const defaultMaxBodyBytes = 4 << 10

// RouterConfig lists the handlers mounted by NewRouter. Nil handlers are not mounted.
// RequestTimeout bounds a single /api request; zero disables it.
type RouterConfig struct {
	CheckIn        http.Handler
	Mint           http.Handler
	Health         http.Handler
	RateLimiter    *RateLimiter
	MaxBodyBytes   int64
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

// NewRouter assembles the public HTTP surface.
func NewRouter(cfg RouterConfig) http.Handler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog(cfg.Logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RequestSize(maxBody))
		if cfg.RequestTimeout > 0 {
			api.Use(RequestDeadline(cfg.RequestTimeout))
		}
		if cfg.RateLimiter != nil {
			api.Use(cfg.RateLimiter.Middleware)
		}
		if cfg.CheckIn != nil {
			api.Handle("/checkIn", cfg.CheckIn)
		}
		if cfg.Mint != nil {
			api.Handle("/mintNft", cfg.Mint)
		}
	})

	if cfg.Health != nil {
		r.Handle("/healthz", cfg.Health)
	}
	r.Handle("/metrics", promhttp.Handler())
	return r
}
