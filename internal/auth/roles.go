package auth

import "github.com/harshit-shukla-1/secret-santa/internal/domain"

// Role constants mirror the profiles.role column.
const (
	RoleAdmin = domain.RoleAdmin
	RoleUser  = domain.RoleUser
)

// AllRoles returns every valid role.
func AllRoles() []string {
	return []string{RoleAdmin, RoleUser}
}
