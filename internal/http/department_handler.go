package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/internal/service"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

type DepartmentHandler struct {
	service *service.DepartmentService
	logger  logger.Logger
}

func NewDepartmentHandler(service *service.DepartmentService, logger logger.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		service: service,
		logger:  logger,
	}
}

type createDepartmentRequest struct {
	Name string `json:"name"`
}

type updateDepartmentRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type deleteDepartmentRequest struct {
	ID string `json:"id"`
}

func (h *DepartmentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/departments.list", h.handleList)
	mux.HandleFunc("/api/departments.create", h.handleCreate)
	mux.HandleFunc("/api/departments.update", h.handleUpdate)
	mux.HandleFunc("/api/departments.delete", h.handleDelete)
}

func (h *DepartmentHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	departments, err := h.service.ListDepartments(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list departments")
		WriteJSONError(w, "Failed to list departments", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"departments": departments,
	})
}

func (h *DepartmentHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	department, err := h.service.CreateDepartment(r.Context(), req.Name)
	if err != nil {
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create department")
		WriteJSONError(w, "Failed to create department", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"department": department,
	})
}

func (h *DepartmentHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req updateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing department ID", http.StatusBadRequest)
		return
	}

	department, err := h.service.UpdateDepartment(r.Context(), req.ID, req.Name)
	if err != nil {
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update department")
		WriteJSONError(w, "Failed to update department", http.StatusInternalServerError)
		return
	}
	if department == nil {
		WriteJSONError(w, "Department not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"department": department,
	})
}

func (h *DepartmentHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req deleteDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing department ID", http.StatusBadRequest)
		return
	}

	deleted, err := h.service.DeleteDepartment(r.Context(), req.ID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to delete department")
		WriteJSONError(w, "Failed to delete department", http.StatusInternalServerError)
		return
	}
	if !deleted {
		WriteJSONError(w, "Department not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
