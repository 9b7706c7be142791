package policy

import "github.com/harshit-shukla-1/secret-santa/internal/domain"

// CanViewWall gates the public feed. The config snapshot is read fresh from
// the store at the start of each check and passed in by value; flipping the
// toggle therefore takes effect on the next request, with no stale
// in-process cache.
func CanViewWall(cfg domain.WallConfig, user *domain.User) bool {
	return cfg.PublicWallEnabled || user.IsAdmin()
}

// CanManageUsers gates account creation, deletion and credential resets.
func CanManageUsers(user *domain.User) bool {
	return user.IsAdmin()
}

// CanModerateWall gates deletion of other people's messages and comments.
func CanModerateWall(user *domain.User) bool {
	return user.IsAdmin()
}

// CanDeleteUser gates deletion of a specific account: admin only, and the
// main admin account is untouchable even for admins.
func CanDeleteUser(actor *domain.User, target string) bool {
	return actor.IsAdmin() && target != domain.AdminUsername
}
