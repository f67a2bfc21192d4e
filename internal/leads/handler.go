package leads

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hmktraders999-droid/AivoraHospitality/pkg/logging"
)

const (
	msgInvalidBody    = "Invalid request body"
	msgRequiredFields = "Name and email are required"
	msgStoreFailed    = "Failed to store lead"
	msgStored         = "Lead stored successfully"
)

// SubmitResponse acknowledges an accepted submission.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *Lead  `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler handles HTTP requests for leads
type Handler struct {
	intake *Intake
	logger *logging.Logger
}

// NewHandler creates a new leads handler
func NewHandler(intake *Intake, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		intake: intake,
		logger: logger,
	}
}

// Submit handles POST /api/submit requests
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode submission", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
		return
	}

	lead, err := h.intake.Submit(r.Context(), req.Input())
	if err != nil {
		var storageErr *StorageError
		switch {
		case errors.Is(err, ErrValidation):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgRequiredFields})
		case errors.As(err, &storageErr):
			h.logger.Error("error storing lead", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgStoreFailed})
		default:
			h.logger.Error("unexpected submission error", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgStoreFailed})
		}
		return
	}

	h.logger.Info("lead stored", "id", lead.ID)
	writeJSON(w, http.StatusOK, SubmitResponse{
		Success: true,
		Message: msgStored,
		Data:    lead,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
