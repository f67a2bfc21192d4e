package bootstrap

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/hmktraders999-droid/AivoraHospitality/internal/archive"
	appconfig "github.com/hmktraders999-droid/AivoraHospitality/internal/config"
	"github.com/hmktraders999-droid/AivoraHospitality/internal/leads"
	"github.com/hmktraders999-droid/AivoraHospitality/internal/mirror"
	"github.com/hmktraders999-droid/AivoraHospitality/internal/notify"
	"github.com/hmktraders999-droid/AivoraHospitality/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// BuildPostgresPool opens and pings the lead store pool. It returns nil, nil
// when DATABASE_URL is unset.
func BuildPostgresPool(ctx context.Context, cfg *appconfig.Config) (*pgxpool.Pool, error) {
	if cfg == nil || strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, nil
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: parse database url: %w", err)
	}
	if cfg.DBMaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.DBMaxConns)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("bootstrap: ping database: %w", err)
	}
	return pool, nil
}

// BuildLeadRepository picks Postgres when a pool exists, otherwise the in-memory store.
func BuildLeadRepository(pool *pgxpool.Pool, cfg *appconfig.Config, logger *logging.Logger) leads.Repository {
	if pool != nil {
		return leads.NewPostgresRepository(pool)
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg != nil && cfg.Env == "production" {
		logger.Warn("DATABASE_URL not set in production; leads will not survive a restart")
	} else {
		logger.Info("DATABASE_URL not set; using in-memory lead store")
	}
	return leads.NewInMemoryRepository()
}

// SinkDeps carries the optional clients sinks are built on.
type SinkDeps struct {
	Redis *redis.Client
	S3    archive.S3API
}

// BuildSinks assembles the best-effort sinks that run after a lead is stored.
// Misconfigured sinks are logged and skipped; they never block startup.
func BuildSinks(cfg *appconfig.Config, deps SinkDeps, logger *logging.Logger) []leads.Sink {
	if cfg == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	var sinks []leads.Sink

	if cfg.SupabaseEnabled() {
		m, err := mirror.NewSupabaseMirror(mirror.SupabaseConfig{
			BaseURL: cfg.SupabaseURL,
			AnonKey: cfg.SupabaseAnonKey,
			Table:   cfg.SupabaseTable,
			Timeout: cfg.MirrorTimeout,
		})
		if err != nil {
			logger.Warn("supabase mirror disabled", "error", err)
		} else {
			sinks = append(sinks, m)
			logger.Info("supabase mirror enabled", "table", cfg.SupabaseTable)
		}
	}

	if cfg.RedisStreamEnabled() && deps.Redis != nil {
		if m := mirror.NewRedisStreamMirror(deps.Redis, cfg.LeadStream); m != nil {
			sinks = append(sinks, m)
			logger.Info("redis stream mirror enabled", "stream", cfg.LeadStream)
		}
	}

	if cfg.ArchiveEnabled() && deps.S3 != nil {
		if store := archive.NewStore(deps.S3, cfg.LeadArchiveBucket, cfg.LeadArchivePrefix); store != nil {
			sinks = append(sinks, store)
			logger.Info("s3 lead archive enabled", "bucket", cfg.LeadArchiveBucket)
		}
	}

	if cfg.NotificationsEnabled() {
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender != nil {
			if n := notify.NewLeadNotifier(sender, cfg.LeadNotifyEmail); n != nil {
				sinks = append(sinks, n)
				logger.Info("lead notifications enabled", "to", cfg.LeadNotifyEmail)
			}
		}
	}

	return sinks
}
