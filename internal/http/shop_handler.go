package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/internal/service"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

type ShopHandler struct {
	service *service.ShopService
	logger  logger.Logger
}

func NewShopHandler(service *service.ShopService, logger logger.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		logger:  logger,
	}
}

type updateShopRequest struct {
	ID string `json:"id"`
	domain.UpdateShopInput
}

type deleteShopRequest struct {
	ID string `json:"id"`
}

func (h *ShopHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/shops.list", h.handleList)
	mux.HandleFunc("/api/shops.get", h.handleGet)
	mux.HandleFunc("/api/shops.create", h.handleCreate)
	mux.HandleFunc("/api/shops.update", h.handleUpdate)
	mux.HandleFunc("/api/shops.delete", h.handleDelete)
}

func (h *ShopHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	filter := domain.ShopFilter{
		Search:       query.Get("search"),
		Status:       query.Get("status"),
		DepartmentID: query.Get("department_id"),
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.PageSize, _ = strconv.Atoi(query.Get("page_size"))

	resp, err := h.service.ListShops(r.Context(), filter)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list shops")
		WriteJSONError(w, "Failed to list shops", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ShopHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	shopID := r.URL.Query().Get("id")
	if shopID == "" {
		WriteJSONError(w, "Missing shop ID", http.StatusBadRequest)
		return
	}

	shop, err := h.service.GetShopByID(r.Context(), shopID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get shop")
		WriteJSONError(w, "Failed to get shop", http.StatusInternalServerError)
		return
	}
	if shop == nil {
		WriteJSONError(w, "Shop not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"shop": shop,
	})
}

func (h *ShopHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.CreateShopInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	shop, err := h.service.CreateShop(r.Context(), input)
	if err != nil {
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create shop")
		WriteJSONError(w, "Failed to create shop", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"shop": shop,
	})
}

func (h *ShopHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req updateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing shop ID", http.StatusBadRequest)
		return
	}

	shop, err := h.service.UpdateShop(r.Context(), req.ID, req.UpdateShopInput)
	if err != nil {
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update shop")
		WriteJSONError(w, "Failed to update shop", http.StatusInternalServerError)
		return
	}
	if shop == nil {
		WriteJSONError(w, "Shop not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"shop": shop,
	})
}

func (h *ShopHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req deleteShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing shop ID", http.StatusBadRequest)
		return
	}

	deleted, err := h.service.DeleteShop(r.Context(), req.ID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to delete shop")
		WriteJSONError(w, "Failed to delete shop", http.StatusInternalServerError)
		return
	}
	if !deleted {
		WriteJSONError(w, "Shop not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
