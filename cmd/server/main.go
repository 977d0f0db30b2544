package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	contactapp "github.com/contactdesk/backend/internal/application/contact"
	"github.com/contactdesk/backend/internal/infrastructure/auth"
	"github.com/contactdesk/backend/internal/infrastructure/config"
	"github.com/contactdesk/backend/internal/infrastructure/logger"
	"github.com/contactdesk/backend/internal/infrastructure/telemetry"
	"github.com/contactdesk/backend/internal/infrastructure/wordpress"
	"github.com/contactdesk/backend/internal/interfaces/http/handler"
	"github.com/contactdesk/backend/internal/interfaces/http/middleware"
	"github.com/contactdesk/backend/internal/interfaces/http/router"
)

func main() {
	// Optional .env for local development; real deployments use the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting ContactDesk backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.WordPress.Endpoint == "" {
		// Not fatal: the condition is surfaced per request as a
		// configuration error, but operators should see it at startup.
		log.Warn("WPGraphQL endpoint is not configured; contact operations will fail until it is set")
	}

	shutdownTracing, err := telemetry.Setup(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		logger.GinMiddleware(log),
	)
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg := middleware.DefaultCORSConfig()
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
		engine.Use(middleware.CORSWithConfig(corsCfg))
	}
	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	client := wordpress.NewClient(cfg.WordPress.Endpoint, cfg.WordPress.Timeout)
	service := contactapp.NewService(client, cfg.WordPress.PostType, log)
	gate := auth.NewSessionGate(cfg.Auth.Username, cfg.Auth.Password, cfg.Auth.CookieName)

	router.New(engine).Register(
		handler.NewAuthHandler(gate),
		handler.NewContactHandler(service),
		handler.NewLookupHandler(service),
	).Setup()

	system := handler.NewSystemHandler()
	engine.GET("/healthz", system.Health)

	// Page navigation is the only gated surface; API routes above are
	// registered outside the guard on purpose.
	pages := handler.NewPageHandler()
	guarded := engine.Group("/", gate.PageGuard())
	guarded.GET("/", pages.Root)
	guarded.GET("/login", pages.Login)
	guarded.GET("/dashboard", pages.Dashboard)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()
	log.Info("HTTP server listening", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Error("Tracing shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}
