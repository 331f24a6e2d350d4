package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"artisan-connect.backend/internal/domain/entities"
	domainerrors "artisan-connect.backend/internal/domain/errors"
	"artisan-connect.backend/internal/domain/repositories"
	"artisan-connect.backend/pkg/logger"
	"artisan-connect.backend/pkg/metrics"
)

// DefaultRestrictionDays applies when a restrict action carries no day count
const DefaultRestrictionDays = 7

// ModerationUsecase applies administrative state transitions to users and
// posts. Each transition is one registry call, atomic per record; a failed
// call leaves both registries untouched.
type ModerationUsecase struct {
	users   repositories.UserRegistry
	content repositories.ContentRegistry
	now     func() time.Time
}

// NewModerationUsecase creates a new moderation usecase
func NewModerationUsecase(users repositories.UserRegistry, content repositories.ContentRegistry) *ModerationUsecase {
	return &ModerationUsecase{
		users:   users,
		content: content,
		now:     time.Now,
	}
}

// ApplyUserAction applies a moderation action to a user. days is only
// meaningful for restrict; zero means the default of 7 calendar days. The
// engine never auto-expires a restriction - login checks the expiry.
func (u *ModerationUsecase) ApplyUserAction(ctx context.Context, userID uuid.UUID, action entities.UserAction, days int) error {
	var err error
	switch action {
	case entities.UserActionBan:
		err = u.users.SetStatus(ctx, userID, entities.UserStatusBanned, nil)
	case entities.UserActionRestrict:
		if days <= 0 {
			days = DefaultRestrictionDays
		}
		until := u.now().AddDate(0, 0, days)
		err = u.users.SetStatus(ctx, userID, entities.UserStatusRestricted, &until)
	case entities.UserActionDelete:
		// Hard removal. Posts keep the dangling author id; the feed
		// composer filters them out at read time.
		err = u.users.Delete(ctx, userID)
	case entities.UserActionActivate:
		err = u.users.SetStatus(ctx, userID, entities.UserStatusActive, nil)
	default:
		return domainerrors.ErrInvalidAction
	}

	if err != nil {
		return err
	}

	metrics.ObserveModerationAction("user", string(action))
	logger.Info(ctx, "user moderation action applied",
		zap.String("user_id", userID.String()),
		zap.String("action", string(action)),
	)
	return nil
}

// ApplyPostAction applies a moderation action to a post. Deleting a post
// has no cascading effect on the craft it was created from.
func (u *ModerationUsecase) ApplyPostAction(ctx context.Context, postID uuid.UUID, action entities.PostAction) error {
	var err error
	switch action {
	case entities.PostActionBan:
		err = u.content.SetPostStatus(ctx, postID, entities.PostStatusBanned)
	case entities.PostActionActivate:
		err = u.content.SetPostStatus(ctx, postID, entities.PostStatusActive)
	case entities.PostActionDelete:
		err = u.content.DeletePost(ctx, postID)
	default:
		return domainerrors.ErrInvalidAction
	}

	if err != nil {
		return err
	}

	metrics.ObserveModerationAction("post", string(action))
	logger.Info(ctx, "post moderation action applied",
		zap.String("post_id", postID.String()),
		zap.String("action", string(action)),
	)
	return nil
}

// ListUsers returns the full user snapshot for the admin dashboard
func (u *ModerationUsecase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return u.users.List(ctx)
}

// ListPosts returns the full post snapshot for the admin dashboard
func (u *ModerationUsecase) ListPosts(ctx context.Context) ([]*entities.Post, error) {
	return u.content.ListPosts(ctx)
}
