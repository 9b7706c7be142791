package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/policy"
	"github.com/harshit-shukla-1/secret-santa/internal/repository"
)

// AdminService handles user management and app configuration. All methods
// assume the caller has already been gated to the admin role.
type AdminService struct {
	pool            *pgxpool.Pool
	users           repository.UserRepository
	config          repository.ConfigRepository
	outbox          repository.OutboxRepository
	defaultPassword string
	logger          *slog.Logger
}

// NewAdminService creates an AdminService.
func NewAdminService(pool *pgxpool.Pool, users repository.UserRepository, config repository.ConfigRepository, outbox repository.OutboxRepository, defaultPassword string, logger *slog.Logger) *AdminService {
	return &AdminService{pool: pool, users: users, config: config, outbox: outbox, defaultPassword: defaultPassword, logger: logger}
}

// CreateUserInput holds admin user creation fields.
type CreateUserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}

// CreateUser provisions an account with an explicit role.
func (s *AdminService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := domain.ValidateUsername(input.Username); err != nil {
		return nil, err
	}
	if err := domain.ValidateRole(input.Role); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	exists, err := s.users.Exists(ctx, s.pool, input.Username)
	if err != nil {
		return nil, domain.ErrInternal("check username", err)
	}
	if exists {
		return nil, domain.ErrConflict("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.ErrInternal("hash password", err)
	}

	avatar := input.Avatar
	if avatar == "" {
		avatar = domain.DefaultAvatar(input.Role)
	}

	user := &domain.User{
		Username:     input.Username,
		Role:         input.Role,
		Avatar:       avatar,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	if err := s.users.Create(ctx, tx, user); err != nil {
		return nil, domain.ErrInternal("create user", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewUserEvent(domain.EventUserCreated, user.Username)); err != nil {
		return nil, domain.ErrInternal("record user event", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}

	s.logger.Info("user created by admin", "username", user.Username, "role", user.Role)
	return user, nil
}

// ListUsers returns all profiles.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("list users", err)
	}
	return users, nil
}

// DeleteUser removes an account. The built-in admin account can never be
// deleted, not even by itself.
func (s *AdminService) DeleteUser(ctx context.Context, actor *domain.User, target string) error {
	if !policy.CanDeleteUser(actor, target) {
		return domain.ErrForbidden("this account cannot be deleted")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	removed, err := s.users.Delete(ctx, tx, target)
	if err != nil {
		return domain.ErrInternal("delete user", err)
	}
	if !removed {
		return domain.ErrNotFound("user", target)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewUserEvent(domain.EventUserDeleted, target)); err != nil {
		return domain.ErrInternal("record user event", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.ErrInternal("commit tx", err)
	}

	s.logger.Info("user deleted", "username", target, "by", actor.Username)
	return nil
}

// ResetAdmin restores the built-in admin account to its default password
// and avatar, creating it if missing. Used as a break-glass recovery path.
func (s *AdminService) ResetAdmin(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrInternal("hash password", err)
	}

	admin := &domain.User{
		Username:     domain.AdminUsername,
		Role:         domain.RoleAdmin,
		Avatar:       domain.DefaultAdminAvatar,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.users.Upsert(ctx, s.pool, admin); err != nil {
		return domain.ErrInternal("reset admin", err)
	}

	s.logger.Warn("admin account reset to defaults")
	return nil
}

// SetWallEnabled flips the public wall toggle.
func (s *AdminService) SetWallEnabled(ctx context.Context, enabled bool) error {
	if err := s.config.SetWallEnabled(ctx, s.pool, enabled); err != nil {
		return domain.ErrInternal("set wall config", err)
	}
	s.logger.Info("public wall toggled", "enabled", enabled)
	return nil
}

// WallConfig returns the current wall configuration snapshot.
func (s *AdminService) WallConfig(ctx context.Context) (domain.WallConfig, error) {
	cfg, err := s.config.Get(ctx, s.pool)
	if err != nil {
		return domain.WallConfig{}, domain.ErrInternal("read wall config", err)
	}
	return cfg, nil
}
