package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hmktraders999-droid/AivoraHospitality/internal/http/handlers"
	httpmiddleware "github.com/hmktraders999-droid/AivoraHospitality/internal/http/middleware"
	"github.com/hmktraders999-droid/AivoraHospitality/internal/leads"
	"github.com/hmktraders999-droid/AivoraHospitality/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	LeadsHandler       *leads.Handler
	VoiceConfigHandler *handlers.VoiceConfigHandler
	MetricsHandler     http.Handler
	StaticHandler      http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", handlers.HealthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.NoCache)
		if cfg.LeadsHandler != nil {
			api.Post("/submit", cfg.LeadsHandler.Submit)
		}
		if cfg.VoiceConfigHandler != nil {
			api.Get("/vapi-config", cfg.VoiceConfigHandler.GetConfig)
		}
	})

	if cfg.StaticHandler != nil {
		r.Handle("/*", cfg.StaticHandler)
	}

	return r
}
