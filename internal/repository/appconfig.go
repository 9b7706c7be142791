package repository

import (
	"context"
	"fmt"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
)

type configRepo struct{}

// NewConfigRepository returns a pgx-backed ConfigRepository.
func NewConfigRepository() ConfigRepository {
	return &configRepo{}
}

// app_config is a single-row table keyed by a fixed id; the row is seeded
// by the migrations so Get never sees an empty table.
func (r *configRepo) Get(ctx context.Context, db DBTX) (domain.WallConfig, error) {
	var cfg domain.WallConfig
	err := db.QueryRow(ctx, `
		SELECT public_wall_enabled, updated_at
		FROM app_config WHERE id = 1`).Scan(&cfg.PublicWallEnabled, &cfg.UpdatedAt)
	if err != nil {
		return domain.WallConfig{}, fmt.Errorf("read app config: %w", err)
	}
	return cfg, nil
}

func (r *configRepo) SetWallEnabled(ctx context.Context, db DBTX, enabled bool) error {
	_, err := db.Exec(ctx, `
		UPDATE app_config SET public_wall_enabled = $1, updated_at = now()
		WHERE id = 1`, enabled)
	if err != nil {
		return fmt.Errorf("update app config: %w", err)
	}
	return nil
}
