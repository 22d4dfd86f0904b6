package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

type UserHandler struct {
	service domain.UserServiceInterface
	logger  logger.Logger
}

func NewUserHandler(service domain.UserServiceInterface, logger logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

type deleteUserRequest struct {
	ID string `json:"id"`
}

type bulkCreateUsersRequest struct {
	Users []domain.CreateUserInput `json:"users"`
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/users.list", h.handleList)
	mux.HandleFunc("/api/users.get", h.handleGet)
	mux.HandleFunc("/api/users.create", h.handleCreate)
	mux.HandleFunc("/api/users.update", h.handleUpdate)
	mux.HandleFunc("/api/users.delete", h.handleDelete)
	mux.HandleFunc("/api/users.bulkCreate", h.handleBulkCreate)
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	filter := domain.ProfileFilter{
		Search:       query.Get("search"),
		Role:         query.Get("role"),
		DepartmentID: query.Get("department_id"),
		ManagerID:    query.Get("manager_id"),
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.PageSize, _ = strconv.Atoi(query.Get("page_size"))

	resp, err := h.service.ListUsers(r.Context(), filter)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list users")
		WriteJSONError(w, "Failed to list users", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("id")
	if userID == "" {
		WriteJSONError(w, "Missing user ID", http.StatusBadRequest)
		return
	}

	profile, err := h.service.GetProfileByID(r.Context(), userID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get user")
		WriteJSONError(w, "Failed to get user", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		WriteJSONError(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": profile,
	})
}

func (h *UserHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.CreateUser(r.Context(), input)
	if err != nil {
		h.writeUserError(w, err, "Failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"user": profile,
	})
}

func (h *UserHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID string `json:"id"`
		domain.UpdateUserInput
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing user ID", http.StatusBadRequest)
		return
	}

	profile, err := h.service.UpdateUser(r.Context(), req.ID, req.UpdateUserInput)
	if err != nil {
		h.writeUserError(w, err, "Failed to update user")
		return
	}
	if profile == nil {
		WriteJSONError(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": profile,
	})
}

func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req deleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing user ID", http.StatusBadRequest)
		return
	}

	deleted, err := h.service.DeleteUser(r.Context(), req.ID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to delete user")
		WriteJSONError(w, "Failed to delete user", http.StatusInternalServerError)
		return
	}
	if !deleted {
		WriteJSONError(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *UserHandler) handleBulkCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req bulkCreateUsersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Users) == 0 {
		WriteJSONError(w, "No users to create", http.StatusBadRequest)
		return
	}

	result, err := h.service.BulkCreateUsers(r.Context(), req.Users)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Bulk user creation failed")
		WriteJSONError(w, "Bulk user creation failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *UserHandler) writeUserError(w http.ResponseWriter, err error, fallback string) {
	var validationErr domain.ValidationError
	var dupErr *domain.ErrDuplicateEmail
	switch {
	case errors.As(err, &validationErr):
		WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
	case errors.As(err, &dupErr):
		WriteJSONError(w, dupErr.Error(), http.StatusConflict)
	default:
		h.logger.WithField("error", err.Error()).Error(fallback)
		WriteJSONError(w, fallback, http.StatusInternalServerError)
	}
}
