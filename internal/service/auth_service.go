package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/pkg/kv"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

// AuthService implements password sign-in against the credential store.
// It holds at most one current session, mirrors it to the key-value
// store so a restart can restore it, and broadcasts auth-state
// transitions on the event bus.
//
// Expiry is fixed at sign-in and never extended; an expired session is
// discarded lazily the next time it is read.
type AuthService struct {
	credentials domain.CredentialRepository
	profiles    domain.ProfileRepository
	bus         *domain.AuthEventBus
	storage     kv.Store
	logger      logger.Logger

	secret        []byte
	expirySeconds int
	now           func() time.Time

	mu      sync.Mutex
	session *domain.Session
}

// AuthServiceConfig carries the dependencies of NewAuthService.
type AuthServiceConfig struct {
	CredentialRepo domain.CredentialRepository
	ProfileRepo    domain.ProfileRepository
	Bus            *domain.AuthEventBus
	Storage        kv.Store
	Logger         logger.Logger

	// Secret signs access tokens
	Secret string

	// ExpirySeconds overrides the session lifetime; zero means the
	// default of domain.SessionExpirySeconds
	ExpirySeconds int

	// Clock overrides time.Now, for tests
	Clock func() time.Time
}

// NewAuthService creates the auth service and restores a persisted
// session when a live one is found in storage.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	s := &AuthService{
		credentials:   cfg.CredentialRepo,
		profiles:      cfg.ProfileRepo,
		bus:           cfg.Bus,
		storage:       cfg.Storage,
		logger:        cfg.Logger,
		secret:        []byte(cfg.Secret),
		expirySeconds: cfg.ExpirySeconds,
		now:           cfg.Clock,
	}
	if s.bus == nil {
		s.bus = domain.NewAuthEventBus()
	}
	if s.expirySeconds <= 0 {
		s.expirySeconds = domain.SessionExpirySeconds
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	s.mu.Lock()
	s.restoreSession()
	s.mu.Unlock()
	return s
}

// SignInWithPassword signs a user in. The email is matched
// case-insensitively; an unknown email and a wrong password produce the
// same error. On success the new session replaces the current one, is
// persisted, and SIGNED_IN is delivered to every subscriber before the
// call returns.
func (s *AuthService) SignInWithPassword(ctx context.Context, input domain.SignInInput) (*domain.AuthResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	credential, err := s.credentials.GetCredentialByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up credential: %w", err)
	}
	if credential == nil || credential.Password != input.Password {
		s.logger.WithField("email", input.Email).Warn("Sign-in rejected")
		return nil, domain.ErrInvalidCredentials
	}

	profile, err := s.profiles.GetProfileByID(ctx, credential.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	session, err := s.issueSession(profile)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.session = session
	s.persistSessionLocked()
	s.mu.Unlock()

	s.logger.WithField("user_id", profile.ID).WithField("email", profile.Email).Info("User signed in")
	s.bus.Publish(domain.AuthEventSignedIn, session)

	response := session.Clone()
	return &domain.AuthResponse{
		User:    &response.User,
		Session: response,
	}, nil
}

// SignOut clears the current session and notifies subscribers with a nil
// session. Signing out with no current session is a no-op: it succeeds
// without touching storage or emitting an event.
func (s *AuthService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	hadSession := s.session != nil
	if hadSession {
		s.session = nil
		s.clearStoredSession()
	}
	s.mu.Unlock()

	if !hadSession {
		return nil
	}

	s.logger.Info("User signed out")
	s.bus.Publish(domain.AuthEventSignedOut, nil)
	return nil
}

// GetSession returns a copy of the current session, or nil when there is
// none. When nothing is cached in memory it reloads from storage first,
// so a session persisted by another process sharing the store becomes
// visible without a restart. An expired session is discarded, including
// its stored copy, and reported as absent.
func (s *AuthService) GetSession(ctx context.Context) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		s.restoreSession()
	}
	if s.session == nil {
		return nil, nil
	}
	if s.session.Expired(s.now()) {
		s.logger.WithField("user_id", s.session.User.ID).Info("Session expired, discarding")
		s.session = nil
		s.clearStoredSession()
		return nil, nil
	}
	return s.session.Clone(), nil
}

// OnAuthStateChange registers a handler for auth-state transitions. When
// a live session exists the handler immediately receives SIGNED_IN with
// it, before this call returns, so late subscribers converge on the
// current state.
func (s *AuthService) OnAuthStateChange(ctx context.Context, handler domain.AuthChangeHandler) (*domain.Subscription, error) {
	sub := s.bus.Subscribe(handler)

	session, err := s.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session != nil {
		handler(domain.AuthEventSignedIn, session)
	}
	return sub, nil
}

// issueSession builds a session for the profile: a signed JWT access
// token, an opaque refresh token, and the profile snapshot.
func (s *AuthService) issueSession(profile *domain.Profile) (*domain.Session, error) {
	now := s.now()
	expiresAt := now.Add(time.Duration(s.expirySeconds) * time.Second)

	claims := jwt.MapClaims{
		"sub":   profile.ID,
		"email": profile.Email,
		"role":  string(profile.Role),
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &domain.Session{
		AccessToken:  accessToken,
		RefreshToken: uuid.NewString(),
		TokenType:    domain.TokenTypeBearer,
		User: domain.SessionUser{
			ID:    profile.ID,
			Email: profile.Email,
			UserMetadata: domain.UserMetadata{
				FullName:     profile.FullName,
				Role:         profile.Role,
				DepartmentID: profile.DepartmentID,
				WorkType:     profile.WorkType,
			},
		},
		ExpiresIn: s.expirySeconds,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// VerifyAccessToken parses and validates a token issued by this service
// and returns its subject.
func (s *AuthService) VerifyAccessToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("invalid access token: %w", err)
	}
	return token.Claims.GetSubject()
}

// restoreSession loads the persisted session into memory, discarding an
// unreadable or expired record. Caller holds s.mu.
func (s *AuthService) restoreSession() {
	raw, ok := s.storage.Get(domain.SessionStorageKey)
	if !ok {
		return
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		s.logger.WithField("error", err.Error()).Warn("Discarding unreadable stored session")
		s.clearStoredSession()
		return
	}
	if session.Expired(s.now()) {
		s.logger.Info("Discarding expired stored session")
		s.clearStoredSession()
		return
	}

	s.session = &session
	s.logger.WithField("user_id", session.User.ID).Info("Session restored from storage")
}

// persistSessionLocked mirrors the current session to storage. Caller
// holds s.mu.
func (s *AuthService) persistSessionLocked() {
	raw, err := json.Marshal(s.session)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to serialize session")
		return
	}
	if err := s.storage.Set(domain.SessionStorageKey, string(raw)); err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to persist session")
	}
}

func (s *AuthService) clearStoredSession() {
	if err := s.storage.Delete(domain.SessionStorageKey); err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to clear stored session")
	}
}
