package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/internal/service"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

type ExerciseHandler struct {
	service *service.ExerciseService
	logger  logger.Logger
}

func NewExerciseHandler(service *service.ExerciseService, logger logger.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ExerciseHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/exercises.progress", h.handleProgress)
	mux.HandleFunc("/api/exercises.upsertProgress", h.handleUpsertProgress)
}

func (h *ExerciseHandler) handleProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		WriteJSONError(w, "Missing user ID", http.StatusBadRequest)
		return
	}

	progress, err := h.service.GetUserProgress(r.Context(), userID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get progress")
		WriteJSONError(w, "Failed to get progress", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"progress": progress,
	})
}

func (h *ExerciseHandler) handleUpsertProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.UpsertProgressInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	progress, err := h.service.UpsertProgress(r.Context(), input)
	if err != nil {
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to upsert progress")
		WriteJSONError(w, "Failed to upsert progress", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"progress": progress,
	})
}
