package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/harshit-shukla-1/secret-santa/internal/auth"
	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/guard"
	"github.com/harshit-shukla-1/secret-santa/internal/repository"
)

// AuthService handles registration, login and password changes.
type AuthService struct {
	pool   *pgxpool.Pool
	users  repository.UserRepository
	outbox repository.OutboxRepository
	jwtMgr *auth.JWTManager
	logger *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(pool *pgxpool.Pool, users repository.UserRepository, outbox repository.OutboxRepository, jwtMgr *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{pool: pool, users: users, outbox: outbox, jwtMgr: jwtMgr, logger: logger}
}

// AuthResult is returned on successful register or login.
type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// RegisterInput holds registration fields.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Avatar   string `json:"avatar,omitempty"`
}

// Register creates a new elf account and returns a session token.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := domain.ValidateUsername(input.Username); err != nil {
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
		avatar = domain.DefaultAvatar(domain.RoleUser)
	}

	user := &domain.User{
		Username:     input.Username,
		Role:         domain.RoleUser,
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

	token, err := s.jwtMgr.GenerateToken(user.Username, user.Role, user.Avatar)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	s.logger.Info("user registered", "username", user.Username)
	return &AuthResult{Token: token, User: user}, nil
}

// LoginInput holds login fields.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a user. Failed attempts are recorded and repeated
// failures lock the account for a cooldown period.
func (s *AuthService) Login(ctx context.Context, input LoginInput, remoteIP string) (*AuthResult, error) {
	if err := guard.CheckLocked(ctx, s.pool, input.Username); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, s.pool, input.Username)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if user == nil {
		guard.RecordAttempt(ctx, s.pool, input.Username, remoteIP, false)
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		guard.RecordAttempt(ctx, s.pool, input.Username, remoteIP, false)
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	guard.RecordAttempt(ctx, s.pool, input.Username, remoteIP, true)

	token, err := s.jwtMgr.GenerateToken(user.Username, user.Role, user.Avatar)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, username, current, next string) error {
	if err := domain.ValidatePassword(next); err != nil {
		return err
	}

	user, err := s.users.FindByUsername(ctx, s.pool, username)
	if err != nil {
		return domain.ErrInternal("find user", err)
	}
	if user == nil {
		return domain.ErrNotFound("user", username)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return domain.ErrUnauthorized("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrInternal("hash password", err)
	}

	if err := s.users.UpdatePassword(ctx, s.pool, username, string(hash)); err != nil {
		return domain.ErrInternal("update password", err)
	}

	s.logger.Info("password changed", "username", username)
	return nil
}

// UpdateAvatar changes the caller's display glyph.
func (s *AuthService) UpdateAvatar(ctx context.Context, username, avatar string) error {
	if avatar == "" {
		return domain.ErrValidation("avatar must not be empty")
	}
	if err := s.users.UpdateAvatar(ctx, s.pool, username, avatar); err != nil {
		return domain.ErrInternal("update avatar", err)
	}
	return nil
}
