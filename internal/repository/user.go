package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
)

type userRepo struct{}

// NewUserRepository returns a pgx-backed UserRepository.
func NewUserRepository() UserRepository {
	return &userRepo{}
}

const userColumns = `username, role, avatar, password_hash, created_at`

func (r *userRepo) FindByUsername(ctx context.Context, db DBTX, username string) (*domain.User, error) {
	row := db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM profiles WHERE username = $1`, username)
	return scanUser(row)
}

func (r *userRepo) List(ctx context.Context, db DBTX) ([]domain.User, error) {
	rows, err := db.Query(ctx, `
		SELECT `+userColumns+`
		FROM profiles ORDER BY username ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Username, &u.Role, &u.Avatar, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepo) Exists(ctx context.Context, db DBTX, username string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM profiles WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

func (r *userRepo) Create(ctx context.Context, db DBTX, user *domain.User) error {
	_, err := db.Exec(ctx, `
		INSERT INTO profiles (username, role, avatar, password_hash, created_at)
		VALUES ($1, $2, $3, $4, now())`,
		user.Username, user.Role, user.Avatar, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *userRepo) Upsert(ctx context.Context, db DBTX, user *domain.User) error {
	_, err := db.Exec(ctx, `
		INSERT INTO profiles (username, role, avatar, password_hash, created_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (username) DO UPDATE
		SET role = EXCLUDED.role,
		    avatar = EXCLUDED.avatar,
		    password_hash = EXCLUDED.password_hash`,
		user.Username, user.Role, user.Avatar, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, db DBTX, username string) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM profiles WHERE username = $1`, username)
	if err != nil {
		return false, fmt.Errorf("delete profile: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *userRepo) UpdateAvatar(ctx context.Context, db DBTX, username, avatar string) error {
	_, err := db.Exec(ctx, `
		UPDATE profiles SET avatar = $2 WHERE username = $1`, username, avatar)
	if err != nil {
		return fmt.Errorf("update avatar: %w", err)
	}
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, db DBTX, username, passwordHash string) error {
	_, err := db.Exec(ctx, `
		UPDATE profiles SET password_hash = $2 WHERE username = $1`, username, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.Username, &u.Role, &u.Avatar, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
