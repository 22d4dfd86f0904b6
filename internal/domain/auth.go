package domain

import (
	"context"
	"time"
)

// SessionStorageKey is the fixed key the current session is persisted
// under. Consumers treat the stored record as opaque except for the
// expiry check.
const SessionStorageKey = "betacom.auth.session"

// TokenTypeBearer is the only token type the mock issues.
const TokenTypeBearer = "bearer"

// SessionExpirySeconds is the fixed session lifetime. Expiry is computed
// once at sign-in and never extended by activity.
const SessionExpirySeconds = 3600

// Credential links a sign-in email to a profile. Email is globally
// unique, compared case-insensitively. The password is stored in plain
// text: this backend is a non-persistent development stand-in, never a
// production credential store.
type Credential struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	ProfileID string `json:"profile_id"`
}

// Clone returns a copy of the credential.
func (c *Credential) Clone() *Credential {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// UserMetadata is the profile snapshot embedded in a session.
type UserMetadata struct {
	FullName     string   `json:"full_name"`
	Role         RoleName `json:"role"`
	DepartmentID *string  `json:"department_id,omitempty"`
	WorkType     WorkType `json:"work_type"`
}

// SessionUser identifies the signed-in user inside a session.
type SessionUser struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

// Session is a time-bounded proof of login. It is never stored in the
// entity store; the current session is mirrored to the key-value store
// under SessionStorageKey.
type Session struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	User         SessionUser `json:"user"`
	ExpiresIn    int         `json:"expires_in"`
	ExpiresAt    int64       `json:"expires_at"`
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	clone := *s
	if s.User.UserMetadata.DepartmentID != nil {
		id := *s.User.UserMetadata.DepartmentID
		clone.User.UserMetadata.DepartmentID = &id
	}
	return &clone
}

// Expired reports whether the session's expiry is at or before now.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt <= now.Unix()
}

type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (i *SignInInput) Validate() error {
	if i.Email == "" {
		return NewValidationError("email is required")
	}
	if i.Password == "" {
		return NewValidationError("password is required")
	}
	return nil
}

// AuthResponse pairs the signed-in user with its session, matching the
// shape callers expect from a real auth client.
type AuthResponse struct {
	User    *SessionUser `json:"user"`
	Session *Session     `json:"session"`
}

type CredentialRepository interface {
	// GetCredentialByEmail looks a credential up by case-insensitive
	// email match. Returns nil when no credential exists.
	GetCredentialByEmail(ctx context.Context, email string) (*Credential, error)
}
