package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"artisan-connect.backend/internal/domain/entities"
)

// UserRegistry owns all user records for the process. Implementations must
// make every find-and-mutate step atomic per record and must hand out
// copies, never the live record.
type UserRegistry interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmailOrUsername(ctx context.Context, identifier string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)

	// SetStatus transitions a user's moderation status. restrictedUntil is
	// stored only with UserStatusRestricted and cleared on any other status.
	SetStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus, restrictedUntil *time.Time) error
	// Delete removes the record permanently; the id becomes unresolvable.
	Delete(ctx context.Context, id uuid.UUID) error
}
