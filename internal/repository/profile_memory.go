package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/betacom-hq/backoffice/internal/domain"
)

// GetProfileByID returns a copy of the profile, or nil when it does not
// exist.
func (s *MemoryStore) GetProfileByID(ctx context.Context, id string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findProfile(id).Clone(), nil
}

// ListProfiles applies the filter, sorts newest first, pages, and
// hydrates department and manager references.
func (s *MemoryStore) ListProfiles(ctx context.Context, filter domain.ProfileFilter) ([]*domain.ProfileDetail, int, error) {
	filter.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)

	filtered := make([]*domain.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		if p.Role == domain.RoleDeleted {
			continue
		}
		if filter.Role != "" && filter.Role != domain.FilterAll && string(p.Role) != filter.Role {
			continue
		}
		if !matchReference(p.DepartmentID, filter.DepartmentID, domain.FilterNoTeam) {
			continue
		}
		if !matchReference(p.ManagerID, filter.ManagerID, domain.FilterNoManager) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.FullName), search) &&
			!strings.Contains(strings.ToLower(p.Email), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)
	page := paginate(filtered, filter.Page, filter.PageSize)

	details := make([]*domain.ProfileDetail, 0, len(page))
	for _, p := range page {
		details = append(details, s.hydrateProfile(p))
	}
	return details, total, nil
}

// CreateProfile creates the profile and its credential in one step.
func (s *MemoryStore) CreateProfile(ctx context.Context, input domain.CreateUserInput) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findCredentialByEmail(input.Email) != nil {
		return nil, &domain.ErrDuplicateEmail{Email: input.Email}
	}

	now := s.now()
	joinDate := input.JoinDate
	if joinDate.IsZero() {
		joinDate = now
	}

	profile := &domain.Profile{
		ID:           s.newID(),
		Email:        input.Email,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         input.Role,
		WorkType:     input.WorkType,
		DepartmentID: input.DepartmentID,
		ManagerID:    input.ManagerID,
		JoinDate:     joinDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.profiles = append(s.profiles, profile)
	s.credentials = append(s.credentials, &domain.Credential{
		Email:     input.Email,
		Password:  input.Password,
		ProfileID: profile.ID,
	})

	return profile.Clone(), nil
}

// UpdateProfile applies the non-nil fields of input and bumps UpdatedAt.
// Email and password changes are written through to the credential.
func (s *MemoryStore) UpdateProfile(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := s.findProfile(id)
	if profile == nil {
		return nil, nil
	}

	credential := s.findCredentialByProfileID(id)

	if input.Email != nil && !strings.EqualFold(*input.Email, profile.Email) {
		if existing := s.findCredentialByEmail(*input.Email); existing != nil && existing.ProfileID != id {
			return nil, &domain.ErrDuplicateEmail{Email: *input.Email}
		}
		profile.Email = *input.Email
		if credential != nil {
			credential.Email = *input.Email
		}
	}
	if input.Password != nil && credential != nil {
		credential.Password = *input.Password
	}
	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.Role != nil {
		profile.Role = *input.Role
	}
	if input.WorkType != nil {
		profile.WorkType = *input.WorkType
	}
	if input.ClearDepartment {
		profile.DepartmentID = nil
	} else if input.DepartmentID != nil {
		profile.DepartmentID = input.DepartmentID
	}
	if input.ClearManager {
		profile.ManagerID = nil
	} else if input.ManagerID != nil {
		profile.ManagerID = input.ManagerID
	}
	if input.JoinDate != nil {
		profile.JoinDate = *input.JoinDate
	}
	profile.UpdatedAt = s.now()

	return profile.Clone(), nil
}

// DeleteProfile removes the profile and its credential, then sweeps:
// shops it owned lose their owner reference and reports orphaned by any
// earlier shop delete are cleaned up.
func (s *MemoryStore) DeleteProfile(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.profiles {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	s.profiles = append(s.profiles[:idx], s.profiles[idx+1:]...)

	for i, c := range s.credentials {
		if c.ProfileID == id {
			s.credentials = append(s.credentials[:i], s.credentials[i+1:]...)
			break
		}
	}

	s.integritySweep()
	return true, nil
}

// GetCredentialByEmail looks a credential up by case-insensitive email.
func (s *MemoryStore) GetCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findCredentialByEmail(email).Clone(), nil
}

func (s *MemoryStore) findProfile(id string) *domain.Profile {
	for _, p := range s.profiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *MemoryStore) findCredentialByEmail(email string) *domain.Credential {
	for _, c := range s.credentials {
		if strings.EqualFold(c.Email, email) {
			return c
		}
	}
	return nil
}

func (s *MemoryStore) findCredentialByProfileID(profileID string) *domain.Credential {
	for _, c := range s.credentials {
		if c.ProfileID == profileID {
			return c
		}
	}
	return nil
}

func (s *MemoryStore) hydrateProfile(p *domain.Profile) *domain.ProfileDetail {
	detail := &domain.ProfileDetail{Profile: *p.Clone()}
	if p.DepartmentID != nil {
		detail.Department = s.findDepartment(*p.DepartmentID).Clone()
	}
	if p.ManagerID != nil {
		if manager := s.findProfile(*p.ManagerID); manager != nil {
			detail.Manager = &domain.ProfileSummary{
				ID:       manager.ID,
				Email:    manager.Email,
				FullName: manager.FullName,
			}
		}
	}
	return detail
}

// matchReference implements the reference-filter sentinels: empty or
// "all" disables the filter, the null sentinel matches rows without the
// reference, anything else matches the reference value exactly.
func matchReference(ref *string, filter, nullSentinel string) bool {
	switch filter {
	case "", domain.FilterAll:
		return true
	case nullSentinel:
		return ref == nil
	default:
		return ref != nil && *ref == filter
	}
}

// paginate returns the requested page; pages beyond the end are empty,
// never an error.
func paginate[T any](rows []T, page, pageSize int) []T {
	skip := (page - 1) * pageSize
	if skip >= len(rows) {
		return nil
	}
	end := skip + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[skip:end]
}
