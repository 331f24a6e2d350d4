package entities

import domainerrors "artisan-connect.backend/internal/domain/errors"

// UserAction is a closed set of moderation actions applicable to a user.
type UserAction string

const (
	UserActionBan      UserAction = "ban"
	UserActionRestrict UserAction = "restrict"
	UserActionDelete   UserAction = "delete"
	UserActionActivate UserAction = "activate"
)

// ParseUserAction converts an action keyword received at the boundary into
// the closed enum. Unknown keywords fail here so the moderation engine only
// ever sees valid actions.
func ParseUserAction(s string) (UserAction, error) {
	switch UserAction(s) {
	case UserActionBan, UserActionRestrict, UserActionDelete, UserActionActivate:
		return UserAction(s), nil
	default:
		return "", domainerrors.ErrInvalidAction
	}
}

// PostAction is a closed set of moderation actions applicable to a post.
type PostAction string

const (
	PostActionBan      PostAction = "ban"
	PostActionDelete   PostAction = "delete"
	PostActionActivate PostAction = "activate"
)

// ParsePostAction converts an action keyword into the closed post enum.
func ParsePostAction(s string) (PostAction, error) {
	switch PostAction(s) {
	case PostActionBan, PostActionDelete, PostActionActivate:
		return PostAction(s), nil
	default:
		return "", domainerrors.ErrInvalidAction
	}
}

// UserActionInput represents an administrative action request on a user
type UserActionInput struct {
	UserID string `json:"userId" binding:"required"`
	Action string `json:"action" binding:"required"`
	Days   int    `json:"days"`
}

// PostActionInput represents an administrative action request on a post
type PostActionInput struct {
	PostID string `json:"postId" binding:"required"`
	Action string `json:"action" binding:"required"`
}
