package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	DatabaseURL        string
	DBMaxConns         int
	RunMigrations      bool
	CORSAllowedOrigins []string

	// Supabase mirror (optional)
	SupabaseURL     string
	SupabaseAnonKey string
	SupabaseTable   string
	MirrorTimeout   time.Duration

	// Redis stream mirror (optional)
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	LeadStream    string

	// SendGrid lead notifications (optional)
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	LeadNotifyEmail   string

	// S3 lead archive (optional)
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
	LeadArchiveBucket   string
	LeadArchivePrefix   string

	Voice VoiceConfig
}

// VoiceConfig carries the public identifiers for the embedded voice widget.
type VoiceConfig struct {
	AssistantID string
	PublicKey   string
}

// Complete reports whether both identifiers are present.
func (v VoiceConfig) Complete() bool {
	return strings.TrimSpace(v.AssistantID) != "" && strings.TrimSpace(v.PublicKey) != ""
}

// SupabaseEnabled reports whether the Supabase mirror has enough configuration to run.
func (c *Config) SupabaseEnabled() bool {
	return strings.TrimSpace(c.SupabaseURL) != "" && strings.TrimSpace(c.SupabaseAnonKey) != ""
}

// RedisStreamEnabled reports whether leads should be appended to a Redis stream.
func (c *Config) RedisStreamEnabled() bool {
	return strings.TrimSpace(c.RedisAddr) != "" && strings.TrimSpace(c.LeadStream) != ""
}

// NotificationsEnabled reports whether new-lead emails can be sent.
func (c *Config) NotificationsEnabled() bool {
	return strings.TrimSpace(c.SendGridAPIKey) != "" &&
		strings.TrimSpace(c.SendGridFromEmail) != "" &&
		strings.TrimSpace(c.LeadNotifyEmail) != ""
}

// ArchiveEnabled reports whether leads should be archived to S3.
func (c *Config) ArchiveEnabled() bool {
	return strings.TrimSpace(c.LeadArchiveBucket) != ""
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DBMaxConns:         getEnvAsInt("DB_MAX_CONNS", 10),
		RunMigrations:      getEnvAsBool("RUN_MIGRATIONS", false),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),

		SupabaseURL:     getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey: getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseTable:   getEnv("SUPABASE_TABLE", "Leads"),
		MirrorTimeout:   getEnvAsDuration("MIRROR_TIMEOUT", 10*time.Second),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),
		LeadStream:    getEnv("LEAD_STREAM", ""),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Aivora Hospitality"),
		LeadNotifyEmail:   getEnv("LEAD_NOTIFY_EMAIL", ""),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
		LeadArchiveBucket:   getEnv("LEAD_ARCHIVE_BUCKET", ""),
		LeadArchivePrefix:   getEnv("LEAD_ARCHIVE_PREFIX", "leads/v1"),

		Voice: VoiceConfig{
			AssistantID: getEnv("VAPI_ASSISTANT_ID", ""),
			PublicKey:   getEnv("VAPI_PUBLIC_KEY", ""),
		},
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
