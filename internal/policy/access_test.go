package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
)

func TestCanViewWall(t *testing.T) {
	regular := &domain.User{Username: "bob", Role: domain.RoleUser}
	admin := &domain.User{Username: "admin", Role: domain.RoleAdmin}

	t.Run("wall enabled", func(t *testing.T) {
		cfg := domain.WallConfig{PublicWallEnabled: true}
		assert.True(t, CanViewWall(cfg, regular))
		assert.True(t, CanViewWall(cfg, admin))
	})

	t.Run("wall disabled", func(t *testing.T) {
		cfg := domain.WallConfig{PublicWallEnabled: false}
		assert.False(t, CanViewWall(cfg, regular))
		assert.True(t, CanViewWall(cfg, admin))
	})
}

func TestAdminCapabilities(t *testing.T) {
	regular := &domain.User{Username: "bob", Role: domain.RoleUser}
	admin := &domain.User{Username: "admin", Role: domain.RoleAdmin}

	assert.True(t, CanManageUsers(admin))
	assert.False(t, CanManageUsers(regular))
	assert.True(t, CanModerateWall(admin))
	assert.False(t, CanModerateWall(regular))
	assert.False(t, CanManageUsers(nil))
}

func TestCanDeleteUser(t *testing.T) {
	admin := &domain.User{Username: "admin", Role: domain.RoleAdmin}
	regular := &domain.User{Username: "bob", Role: domain.RoleUser}

	assert.True(t, CanDeleteUser(admin, "carol"))
	assert.False(t, CanDeleteUser(admin, domain.AdminUsername), "main admin is never deletable")
	assert.False(t, CanDeleteUser(regular, "carol"))
}
