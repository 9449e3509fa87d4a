package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/recipecatalog/backend/config"
	"github.com/recipecatalog/backend/internal/api"
	"github.com/recipecatalog/backend/internal/middleware"
	"github.com/recipecatalog/backend/internal/service"
)

// Options carries the server's collaborators. Nil optional fields disable
// the corresponding feature.
type Options struct {
	Recipes service.IRecipeService
	Logger  *zap.Logger

	Images      service.IImageService
	Tokens      middleware.TokenValidator
	RateLimiter *middleware.RateLimiter
	Metrics     *middleware.Metrics
	Gatherer    prometheus.Gatherer
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New assembles the router and middleware chain.
func New(cfg *config.Config, opts Options) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(requestid.New())
	router.Use(middleware.Recovery(opts.Logger))
	router.Use(middleware.Logger(opts.Logger))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
	}
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	if opts.Tokens != nil {
		router.Use(middleware.OptionalAuth(opts.Tokens))
	}
	if opts.RateLimiter != nil {
		router.Use(opts.RateLimiter.WriteLimitMiddleware())
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api.RegisterRoutes(router, opts.Recipes, opts.Images, opts.Logger)

	return &Server{
		router: router,
		logger: opts.Logger,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
