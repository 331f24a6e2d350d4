package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "admin"
)

// UserStatus represents the moderation status of a user
type UserStatus string

const (
	UserStatusActive     UserStatus = "active"
	UserStatusRestricted UserStatus = "restricted"
	UserStatusBanned     UserStatus = "banned"
)

// Profile holds the public artisan profile shown in the community feed
type Profile struct {
	Bio         string   `json:"bio"`
	Location    string   `json:"location"`
	Specialties []string `json:"specialties"`
	JoinedDate  string   `json:"joinedDate"`
}

// User represents a user entity
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	// RestrictedUntil is set only while Status is restricted. The moderation
	// engine never auto-expires it; login checks it instead.
	RestrictedUntil null.Time `json:"restrictedUntil,omitempty"`
	Profile         Profile   `json:"profile"`
	CreatedAt       time.Time `json:"createdAt"`
}

// DisplayName is the name shown as the author of community posts.
func (u *User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// SignupInput represents input for user signup
type SignupInput struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,min=2,max=100"`
	Password  string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for user login. Identifier matches either
// email or username, case-insensitively.
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"`
}

// CreateUserInput represents input for administrative user creation
type CreateUserInput struct {
	Email    string   `json:"email" binding:"required,email"`
	Username string   `json:"username" binding:"required,min=2,max=100"`
	Password string   `json:"password" binding:"required,min=8"`
	Role     UserRole `json:"role"`
}

// CreateAdminInput represents input for creating an administrator,
// gated by a shared admin code supplied out of band.
type CreateAdminInput struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,min=2,max=100"`
	Password  string `json:"password" binding:"required,min=8"`
	AdminCode string `json:"adminCode" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}
