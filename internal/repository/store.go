// Package repository implements the in-memory entity store backing the
// development backend. Every read hands out deep copies so callers can
// never mutate store state through a held reference; every write runs
// under one exclusive lock around its whole read-modify-write sequence.
package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/betacom-hq/backoffice/internal/domain"
)

// MemoryStore holds every entity collection. It is constructed once at
// application start and injected into the services; there is no
// package-level state, so tests can run isolated instances side by side.
type MemoryStore struct {
	mu sync.RWMutex

	now   func() time.Time
	newID func() string

	departments []*domain.Department
	roles       []*domain.Role
	profiles    []*domain.Profile
	credentials []*domain.Credential
	shops       []*domain.Shop
	reports     []*domain.ComprehensiveReport
	revenues    []*domain.ShopRevenueRecord
	progress    []*domain.ExerciseProgress
	banners     []*domain.Banner
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithClock overrides the store's clock. Used by tests to control
// timestamps and session expiry.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// WithIDGenerator overrides id generation. Ids only need to be unique
// within the process lifetime.
func WithIDGenerator(newID func() string) Option {
	return func(s *MemoryStore) {
		s.newID = newID
	}
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Interface assertions: the store is the single implementation of every
// repository the services consume.
var (
	_ domain.ProfileRepository          = (*MemoryStore)(nil)
	_ domain.CredentialRepository       = (*MemoryStore)(nil)
	_ domain.RoleRepository             = (*MemoryStore)(nil)
	_ domain.DepartmentRepository       = (*MemoryStore)(nil)
	_ domain.ShopRepository             = (*MemoryStore)(nil)
	_ domain.ReportRepository           = (*MemoryStore)(nil)
	_ domain.ExerciseProgressRepository = (*MemoryStore)(nil)
	_ domain.BannerRepository           = (*MemoryStore)(nil)
)

func strPtr(v string) *string {
	return &v
}
