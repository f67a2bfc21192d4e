package handlers

import (
	"errors"
	"net/http"

	"github.com/hmktraders999-droid/AivoraHospitality/internal/config"
	"github.com/hmktraders999-droid/AivoraHospitality/pkg/logging"
)

// ErrConfiguration is returned when the voice widget identifiers are not configured.
var ErrConfiguration = errors.New("voice widget configuration is missing")

const msgVoiceConfigMissing = "Vapi configuration is missing. Please contact support."

// VoiceConfigResponse is the body of GET /api/vapi-config.
type VoiceConfigResponse struct {
	AssistantID string `json:"assistantId"`
	PublicKey   string `json:"publicKey"`
}

// VoiceConfigHandler exposes the public voice widget identifiers to the landing page.
type VoiceConfigHandler struct {
	voice  config.VoiceConfig
	logger *logging.Logger
}

func NewVoiceConfigHandler(voice config.VoiceConfig, logger *logging.Logger) *VoiceConfigHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &VoiceConfigHandler{voice: voice, logger: logger}
}

// Lookup returns both identifiers or ErrConfiguration. It never returns one without the other.
func (h *VoiceConfigHandler) Lookup() (VoiceConfigResponse, error) {
	if !h.voice.Complete() {
		return VoiceConfigResponse{}, ErrConfiguration
	}
	return VoiceConfigResponse{
		AssistantID: h.voice.AssistantID,
		PublicKey:   h.voice.PublicKey,
	}, nil
}

// GetConfig handles GET /api/vapi-config.
func (h *VoiceConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Lookup()
	if err != nil {
		h.logger.Error("vapi credentials not configured", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msgVoiceConfigMissing})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
