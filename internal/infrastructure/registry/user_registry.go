package registry

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"artisan-connect.backend/internal/domain/entities"
	domainerrors "artisan-connect.backend/internal/domain/errors"
	"artisan-connect.backend/internal/domain/repositories"
)

// UserRegistry is the in-memory user store. A single RWMutex guards the
// backing slice; every find-and-mutate runs under the write lock so two
// concurrent moderation actions on one id serialize to a consistent state.
// State is process-local: a restart discards it.
type UserRegistry struct {
	mu    sync.RWMutex
	users []*entities.User
}

// NewUserRegistry creates an empty user registry
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{}
}

var _ repositories.UserRegistry = (*UserRegistry)(nil)

// Create inserts a new user, enforcing case-insensitive email/username
// uniqueness across the whole registry. On conflict the registry is left
// unchanged.
func (r *UserRegistry) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(user.Email)
	for _, u := range r.users {
		if u.Email == email || strings.EqualFold(u.Username, user.Username) {
			return nil, domainerrors.ErrConflict
		}
	}

	stored := cloneUser(user)
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.Email = email
	if stored.Status == "" {
		stored.Status = entities.UserStatusActive
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.users = append(r.users, stored)

	return cloneUser(stored), nil
}

// GetByID returns a copy of the user with the given id
func (r *UserRegistry) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u := r.findLocked(id)
	if u == nil {
		return nil, domainerrors.ErrNotFound
	}
	return cloneUser(u), nil
}

// GetByEmailOrUsername resolves a login identifier, case-insensitively,
// against either the email or the username.
func (r *UserRegistry) GetByEmailOrUsername(ctx context.Context, identifier string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, identifier) || strings.EqualFold(u.Username, identifier) {
			return cloneUser(u), nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

// List returns a snapshot of all users in insertion order
func (r *UserRegistry) List(ctx context.Context) ([]*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// SetStatus transitions the user's moderation status as a single atomic
// step. The restriction expiry is kept only while the status is restricted.
func (r *UserRegistry) SetStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus, restrictedUntil *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.findLocked(id)
	if u == nil {
		return domainerrors.ErrNotFound
	}

	u.Status = status
	if status == entities.UserStatusRestricted && restrictedUntil != nil {
		u.RestrictedUntil = null.TimeFrom(*restrictedUntil)
	} else {
		u.RestrictedUntil = null.Time{}
	}
	return nil
}

// Delete removes the user permanently. Posts referencing this author keep
// their dangling id; the feed composer filters them at read time.
func (r *UserRegistry) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (r *UserRegistry) findLocked(id uuid.UUID) *entities.User {
	for _, u := range r.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func cloneUser(u *entities.User) *entities.User {
	c := *u
	c.Profile.Specialties = append([]string(nil), u.Profile.Specialties...)
	return &c
}
