package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hmktraders999-droid/AivoraHospitality/internal/api/router"
	"github.com/hmktraders999-droid/AivoraHospitality/internal/app/bootstrap"
	appconfig "github.com/hmktraders999-droid/AivoraHospitality/internal/config"
	"github.com/hmktraders999-droid/AivoraHospitality/internal/http/handlers"
	"github.com/hmktraders999-droid/AivoraHospitality/internal/leads"
	"github.com/hmktraders999-droid/AivoraHospitality/internal/observability/metrics"
	"github.com/hmktraders999-droid/AivoraHospitality/internal/web"
	"github.com/hmktraders999-droid/AivoraHospitality/pkg/logging"
)

func main() {
	envFileErr := godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	if envFileErr != nil {
		logger.Debug("no .env file loaded, using process environment", "error", envFileErr)
	}
	logger.Info("starting aivora landing API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)
	if !cfg.Voice.Complete() {
		logger.Warn("VAPI_ASSISTANT_ID or VAPI_PUBLIC_KEY not set; /api/vapi-config will return 500")
	}

	ctx := context.Background()

	if cfg.RunMigrations {
		if err := bootstrap.RunMigrations(cfg.DatabaseURL); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	pool := connectPostgresPool(ctx, cfg, logger)
	if pool != nil {
		defer pool.Close()
	}
	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	if redisClient != nil {
		defer redisClient.Close()
	}

	sinkDeps := bootstrap.SinkDeps{Redis: redisClient}
	s3Client, err := bootstrap.BuildS3Client(ctx, cfg)
	if err != nil {
		logger.Warn("failed to load AWS config; lead archive disabled", "error", err)
	} else if s3Client != nil {
		sinkDeps.S3 = s3Client
	}

	metricsHandler, intakeMetrics := setupIntakeMetrics()

	intake := leads.NewIntake(leads.IntakeConfig{
		Repo:        bootstrap.BuildLeadRepository(pool, cfg, logger),
		Sinks:       bootstrap.BuildSinks(cfg, sinkDeps, logger),
		Metrics:     intakeMetrics,
		Logger:      logger,
		SinkTimeout: cfg.MirrorTimeout,
	})

	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leads.NewHandler(intake, logger),
		VoiceConfigHandler: handlers.NewVoiceConfigHandler(cfg.Voice, logger),
		MetricsHandler:     metricsHandler,
		StaticHandler:      web.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	if err := intake.Drain(shutdownCtx); err != nil {
		logger.Warn("lead mirror writes still in flight at shutdown", "error", err)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// setupIntakeMetrics builds a dedicated registry so /metrics only exposes this service.
func setupIntakeMetrics() (http.Handler, *metrics.IntakeMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	intakeMetrics := metrics.NewIntakeMetrics(reg)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), intakeMetrics
}

// connectPostgresPool exits when DATABASE_URL is set but unreachable; an unset
// URL yields nil and the in-memory store.
func connectPostgresPool(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) *pgxpool.Pool {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := bootstrap.BuildPostgresPool(connectCtx, cfg)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		logger.Info("connected to postgres")
	}
	return pool
}
