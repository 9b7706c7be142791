package domain

import "time"

// Role values for profiles.role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AdminUsername is the reserved main admin account. It is seeded by the
// migrations and can never be deleted.
const AdminUsername = "admin"

// Default avatars assigned at creation when none is picked.
const (
	DefaultAdminAvatar = "🎅"
	DefaultUserAvatar  = "🧝"
)

// User represents a profiles row. The username is the stable public
// identifier; messages, guesses and comments all reference it.
type User struct {
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	Avatar       string    `json:"avatar"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// DefaultAvatar returns the avatar used when a profile is created without one.
func DefaultAvatar(role string) string {
	if role == RoleAdmin {
		return DefaultAdminAvatar
	}
	return DefaultUserAvatar
}
