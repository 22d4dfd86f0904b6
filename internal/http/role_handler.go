package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/internal/service"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

type RoleHandler struct {
	service *service.RoleService
	logger  logger.Logger
}

func NewRoleHandler(service *service.RoleService, logger logger.Logger) *RoleHandler {
	return &RoleHandler{
		service: service,
		logger:  logger,
	}
}

type updateRoleRequest struct {
	ID string `json:"id"`
	domain.UpdateRoleInput
}

type deleteRoleRequest struct {
	ID string `json:"id"`
}

func (h *RoleHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/roles.list", h.handleList)
	mux.HandleFunc("/api/roles.create", h.handleCreate)
	mux.HandleFunc("/api/roles.update", h.handleUpdate)
	mux.HandleFunc("/api/roles.delete", h.handleDelete)
}

func (h *RoleHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	roles, err := h.service.ListRoles(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list roles")
		WriteJSONError(w, "Failed to list roles", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"roles": roles,
	})
}

func (h *RoleHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.CreateRoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	role, err := h.service.CreateRole(r.Context(), input)
	if err != nil {
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create role")
		WriteJSONError(w, "Failed to create role", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"role": role,
	})
}

func (h *RoleHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing role ID", http.StatusBadRequest)
		return
	}

	role, err := h.service.UpdateRole(r.Context(), req.ID, req.UpdateRoleInput)
	if err != nil {
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update role")
		WriteJSONError(w, "Failed to update role", http.StatusInternalServerError)
		return
	}
	if role == nil {
		WriteJSONError(w, "Role not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"role": role,
	})
}

func (h *RoleHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req deleteRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing role ID", http.StatusBadRequest)
		return
	}

	deleted, err := h.service.DeleteRole(r.Context(), req.ID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to delete role")
		WriteJSONError(w, "Failed to delete role", http.StatusInternalServerError)
		return
	}
	if !deleted {
		// Either the role is missing or it is the last one; both refuse
		WriteJSONError(w, "Role cannot be deleted", http.StatusConflict)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
