package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/config"
	httpserver "github.com/preston-bernstein/fantasy-logo-studio/internal/http"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/http/handlers"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/http/middleware"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/janitor"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/league"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logging"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logo"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/mcptools"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/metrics"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/store"
)

var metricsSetup = metrics.Setup

var errShuttingDown = errors.New("shutting down")

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	league        *league.Service
	generator     *logo.Generator
	janitor       *janitor.Janitor
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	draining      atomic.Bool
}

// New constructs a server with every league provider wired.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

// newServerWithMetrics lets tests inject a provider registry and recorder.
func newServerWithMetrics(cfg config.Config, logger *slog.Logger, registry *providers.Registry, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if registry == nil {
		registry = newProviderFactory(logger, recorder).build(cfg)
	}

	s := &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
	s.store, s.generator, s.league = buildServices(cfg, registry, logger, recorder)
	s.janitor = janitor.New(s.store, logger, recorder, cfg.JanitorInterval, cfg.WorkspaceTTL)
	s.httpServer = s.buildHTTPServer()
	return s
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices(cfg config.Config, registry *providers.Registry, logger *slog.Logger, recorder *metrics.Recorder) (*store.MemoryStore, *logo.Generator, *league.Service) {
	memoryStore := store.NewMemoryStore(cfg.MaxWorkspaces)
	generator := logo.NewGenerator(logo.Config{
		BaseURL:      cfg.Logo.BaseURL,
		Width:        cfg.Logo.Width,
		Height:       cfg.Logo.Height,
		Verify:       cfg.Logo.Verify,
		Concurrency:  cfg.Logo.Concurrency,
		BatchTimeout: batchTimeoutFor(cfg.Logo),
		HTTPClient:   &http.Client{Timeout: cfg.Logo.Timeout},
		Logger:       logger,
		Recorder:     recorder,
	})
	svc := league.NewService(league.Config{
		Registry:  registry,
		Store:     memoryStore,
		Generator: generator,
		Logger:    logger,
		Recorder:  recorder,
	})
	return memoryStore, generator, svc
}

func (s *Server) buildHTTPServer() httpServer {
	handler := handlers.NewHandler(s.league, s.generator, s.logger, s.ready)

	var mcpHandler http.Handler
	if s.cfg.MCPEnabled {
		mcpHandler = mcptools.NewHandler(mcptools.NewServer(mcptools.Config{
			League:    s.league,
			Generator: s.generator,
			Logger:    s.logger,
			Version:   s.cfg.Version,
		}))
	}

	router := httpserver.NewRouter(handler, mcpHandler)
	wrapped := middleware.LoggingMiddleware(s.logger, s.metrics, router)
	if len(s.cfg.CORSAllowedOrigins) > 0 {
		wrapped = middleware.NewCORSHandler(s.cfg.CORSAllowedOrigins)(wrapped)
	}

	srv := &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeoutFor(s.cfg.Logo),
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// ready fails once shutdown has begun so load balancers drain the instance.
func (s *Server) ready() error {
	if s.draining.Load() {
		return errShuttingDown
	}
	return nil
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	if s.janitor != nil {
		s.janitor.Start(ctx)
	}
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	s.draining.Store(true)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.janitor != nil {
		if err := s.janitor.Stop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "janitor stop failed", slog.Any(logging.FieldError, err))
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", slog.Any(logging.FieldError, err))
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", slog.Any(logging.FieldError, err))
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any(logging.FieldError, err))
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", slog.Any(logging.FieldError, err))
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
