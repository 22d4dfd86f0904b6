package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/internal/service"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

type BannerHandler struct {
	service *service.BannerService
	logger  logger.Logger
}

func NewBannerHandler(service *service.BannerService, logger logger.Logger) *BannerHandler {
	return &BannerHandler{
		service: service,
		logger:  logger,
	}
}

type deleteBannerRequest struct {
	ID string `json:"id"`
}

func (h *BannerHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/banners.list", h.handleList)
	mux.HandleFunc("/api/banners.create", h.handleCreate)
	mux.HandleFunc("/api/banners.delete", h.handleDelete)
}

func (h *BannerHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	banners, err := h.service.ListBanners(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list banners")
		WriteJSONError(w, "Failed to list banners", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"banners": banners,
	})
}

func (h *BannerHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.CreateBannerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	banner, err := h.service.CreateBanner(r.Context(), input)
	if err != nil {
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create banner")
		WriteJSONError(w, "Failed to create banner", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"banner": banner,
	})
}

func (h *BannerHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req deleteBannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing banner ID", http.StatusBadRequest)
		return
	}

	deleted, err := h.service.DeleteBanner(r.Context(), req.ID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to delete banner")
		WriteJSONError(w, "Failed to delete banner", http.StatusInternalServerError)
		return
	}
	if !deleted {
		WriteJSONError(w, "Banner not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
