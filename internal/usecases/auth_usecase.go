package usecases

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"artisan-connect.backend/internal/domain/entities"
	domainerrors "artisan-connect.backend/internal/domain/errors"
	"artisan-connect.backend/internal/domain/repositories"
	"artisan-connect.backend/pkg/crypto"
	"artisan-connect.backend/pkg/jwt"
	"artisan-connect.backend/pkg/redis"
)

// SessionStore is the slice of the Redis session store the auth flow needs
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthUsecase handles signup, login and administrative account creation
type AuthUsecase struct {
	users      repositories.UserRegistry
	jwtService *jwt.JWTService
	sessions   SessionStore
	adminCode  string
}

// NewAuthUsecase creates a new auth usecase. sessions may be nil when
// session-based auth is disabled.
func NewAuthUsecase(
	users repositories.UserRegistry,
	jwtService *jwt.JWTService,
	sessions SessionStore,
	adminCode string,
) *AuthUsecase {
	return &AuthUsecase{
		users:      users,
		jwtService: jwtService,
		sessions:   sessions,
		adminCode:  adminCode,
	}
}

// Signup registers a new member account
func (u *AuthUsecase) Signup(ctx context.Context, input *entities.SignupInput) (*entities.AuthResponse, error) {
	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         entities.UserRoleMember,
		Status:       entities.UserStatusActive,
		Profile: entities.Profile{
			Specialties: []string{},
			JoinedDate:  time.Now().Format("2006-01-02"),
		},
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			return nil, domainerrors.Conflict("user with this email or username already exists")
		}
		return nil, err
	}

	return u.issueTokens(ctx, created, false)
}

// CreateUser creates a member (or admin) account on behalf of an administrator
func (u *AuthUsecase) CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	role := input.Role
	if role == "" {
		role = entities.UserRoleMember
	}
	if role != entities.UserRoleMember && role != entities.UserRoleAdmin {
		return nil, domainerrors.BadRequest("unknown role")
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	first, last := splitUsername(input.Username)
	user := &entities.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
		FirstName:    first,
		LastName:     last,
		Role:         role,
		Status:       entities.UserStatusActive,
		Profile: entities.Profile{
			Bio:         "New artisan member",
			Location:    "India",
			Specialties: []string{},
			JoinedDate:  time.Now().Format("2006-01-02"),
		},
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			return nil, domainerrors.Conflict("user with this email or username already exists")
		}
		return nil, err
	}
	return created, nil
}

// CreateAdmin creates an administrator account, gated by the shared admin
// code supplied out of band. A wrong code fails before any registry write.
func (u *AuthUsecase) CreateAdmin(ctx context.Context, input *entities.CreateAdminInput) (*entities.User, error) {
	if input.AdminCode != u.adminCode {
		return nil, domainerrors.Forbidden("invalid admin code")
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	first, last := splitUsername(input.Username)
	user := &entities.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
		FirstName:    first,
		LastName:     last,
		Role:         entities.UserRoleAdmin,
		Status:       entities.UserStatusActive,
		Profile: entities.Profile{
			Bio:         "Platform Administrator",
			Location:    "India",
			Specialties: []string{"Administration"},
			JoinedDate:  time.Now().Format("2006-01-02"),
		},
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			return nil, domainerrors.Conflict("admin with this email or username already exists")
		}
		return nil, err
	}
	return created, nil
}

// Login authenticates by email or username and enforces moderation status.
// A restriction that has already expired does not block the login; the
// field itself is only cleared by an explicit activate action.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.users.GetByEmailOrUsername(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	switch user.Status {
	case entities.UserStatusBanned:
		return nil, domainerrors.ErrAccountBanned
	case entities.UserStatusRestricted:
		if user.RestrictedUntil.Valid && time.Now().Before(user.RestrictedUntil.Time) {
			return nil, domainerrors.NewAppError(
				http.StatusForbidden,
				"account restricted until "+user.RestrictedUntil.Time.Format(time.RFC3339),
				domainerrors.ErrAccountRestricted,
			)
		}
	}

	return u.issueTokens(ctx, user, input.UseSession)
}

// Logout removes a server-side session, if session auth is in use
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if u.sessions == nil || sessionID == "" {
		return nil
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *AuthUsecase) issueTokens(ctx context.Context, user *entities.User, useSession bool) (*entities.AuthResponse, error) {
	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	resp := &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}

	if useSession && u.sessions != nil {
		sessionID := uuid.New().String()
		data := &redis.SessionData{
			UserID:       user.ID.String(),
			Role:         string(user.Role),
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}
		if err := u.sessions.CreateSession(ctx, sessionID, data, 24*time.Hour); err != nil {
			return nil, err
		}
		resp.SessionID = sessionID
	}

	return resp, nil
}

func splitUsername(username string) (first, last string) {
	for i, r := range username {
		if r == ' ' {
			return username[:i], username[i+1:]
		}
	}
	return username, ""
}
