package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "LOG_LEVEL", "DATABASE_URL", "DB_MAX_CONNS", "SUPABASE_TABLE",
		"MIRROR_TIMEOUT", "CORS_ALLOWED_ORIGINS", "VAPI_ASSISTANT_ID", "VAPI_PUBLIC_KEY",
		"SUPABASE_URL", "SUPABASE_ANON_KEY", "REDIS_ADDR", "LEAD_STREAM", "SENDGRID_API_KEY",
		"AWS_REGION", "LEAD_ARCHIVE_BUCKET", "LEAD_ARCHIVE_PREFIX",
	} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.DBMaxConns != 10 {
		t.Fatalf("expected default max conns, got %d", cfg.DBMaxConns)
	}
	if cfg.SupabaseTable != "Leads" {
		t.Fatalf("expected default supabase table, got %s", cfg.SupabaseTable)
	}
	if cfg.MirrorTimeout != 10*time.Second {
		t.Fatalf("expected default mirror timeout, got %s", cfg.MirrorTimeout)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no cors origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.AWSRegion != "us-east-1" || cfg.LeadArchivePrefix != "leads/v1" {
		t.Fatalf("unexpected aws defaults %s %s", cfg.AWSRegion, cfg.LeadArchivePrefix)
	}
	if cfg.SupabaseEnabled() || cfg.RedisStreamEnabled() || cfg.NotificationsEnabled() || cfg.ArchiveEnabled() {
		t.Fatalf("expected optional sinks disabled by default")
	}
	if cfg.Voice.Complete() {
		t.Fatalf("expected voice config incomplete by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://user@host/db")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://aivora.example, ,https://www.aivora.example")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("MIRROR_TIMEOUT", "3s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LEAD_STREAM", "leads:submitted")
	t.Setenv("VAPI_ASSISTANT_ID", "assistant-123")
	t.Setenv("VAPI_PUBLIC_KEY", "public-456")
	t.Setenv("LEAD_ARCHIVE_BUCKET", "aivora-leads")
	cfg := Load()
	if !cfg.ArchiveEnabled() {
		t.Fatalf("expected archive enabled")
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://user@host/db" {
		t.Fatalf("expected db override, got %s", cfg.DatabaseURL)
	}
	if cfg.DBMaxConns != 25 {
		t.Fatalf("expected max conns override, got %d", cfg.DBMaxConns)
	}
	if !cfg.RunMigrations {
		t.Fatalf("expected migrations enabled")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://www.aivora.example" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.SupabaseEnabled() {
		t.Fatalf("expected supabase enabled")
	}
	if cfg.MirrorTimeout != 3*time.Second {
		t.Fatalf("expected mirror timeout override, got %s", cfg.MirrorTimeout)
	}
	if !cfg.RedisStreamEnabled() {
		t.Fatalf("expected redis stream enabled")
	}
	if !cfg.Voice.Complete() || cfg.Voice.AssistantID != "assistant-123" {
		t.Fatalf("unexpected voice config %+v", cfg.Voice)
	}
}

func TestVoiceConfigComplete(t *testing.T) {
	tests := []struct {
		name  string
		voice VoiceConfig
		want  bool
	}{
		{"both set", VoiceConfig{AssistantID: "a", PublicKey: "k"}, true},
		{"missing assistant", VoiceConfig{PublicKey: "k"}, false},
		{"missing key", VoiceConfig{AssistantID: "a"}, false},
		{"whitespace key", VoiceConfig{AssistantID: "a", PublicKey: "  "}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.voice.Complete(); got != tt.want {
				t.Fatalf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNotificationsEnabledRequiresRecipient(t *testing.T) {
	cfg := &Config{SendGridAPIKey: "key", SendGridFromEmail: "noreply@aivora.example"}
	if cfg.NotificationsEnabled() {
		t.Fatalf("expected notifications disabled without recipient")
	}
	cfg.LeadNotifyEmail = "sales@aivora.example"
	if !cfg.NotificationsEnabled() {
		t.Fatalf("expected notifications enabled")
	}
}
