package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

// AuthServiceInterface is the surface the auth handler needs.
type AuthServiceInterface interface {
	SignInWithPassword(ctx context.Context, input domain.SignInInput) (*domain.AuthResponse, error)
	SignOut(ctx context.Context) error
	GetSession(ctx context.Context) (*domain.Session, error)
}

type AuthHandler struct {
	service AuthServiceInterface
	logger  logger.Logger
}

func NewAuthHandler(service AuthServiceInterface, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// signInResponse mirrors the auth-client shape: on failure user and
// session are explicit nulls next to the error message.
type signInResponse struct {
	User    *domain.SessionUser `json:"user"`
	Session *domain.Session     `json:"session"`
	Error   string              `json:"error,omitempty"`
}

func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth.signIn", h.handleSignIn)
	mux.HandleFunc("/api/auth.signOut", h.handleSignOut)
	mux.HandleFunc("/api/auth.session", h.handleSession)
}

func (h *AuthHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.SignInInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SignInWithPassword(r.Context(), input)
	if err != nil {
		var validationErr domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrProfileNotFound):
			writeJSON(w, http.StatusUnauthorized, signInResponse{Error: err.Error()})
		default:
			h.logger.WithField("error", err.Error()).Error("Sign-in failed")
			WriteJSONError(w, "Sign-in failed", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, signInResponse{
		User:    resp.User,
		Session: resp.Session,
	})
}

func (h *AuthHandler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.service.SignOut(r.Context()); err != nil {
		h.logger.WithField("error", err.Error()).Error("Sign-out failed")
		WriteJSONError(w, "Sign-out failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *AuthHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, err := h.service.GetSession(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get session")
		WriteJSONError(w, "Failed to get session", http.StatusInternalServerError)
		return
	}

	// A missing session is a normal state, not an error
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session": session,
	})
}
