package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fmontiron/portfolio-api/internal/models"
)

// SettingsRepository persists bilingual key-value settings.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository constructs the repository.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// List returns every setting row.
func (r *SettingsRepository) List(ctx context.Context) ([]models.Setting, error) {
	const query = `SELECT key, value_en, value_es FROM settings ORDER BY key ASC`
	var settings []models.Setting
	if err := r.db.SelectContext(ctx, &settings, query); err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return settings, nil
}

// UpsertMany inserts or updates settings within a transaction, one row
// per key.
func (r *SettingsRepository) UpsertMany(ctx context.Context, settings []models.Setting) error {
	if len(settings) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin settings tx: %w", err)
	}
	const query = `INSERT INTO settings (key, value_en, value_es)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value_en = excluded.value_en, value_es = excluded.value_es`
	for _, s := range settings {
		if _, err := tx.ExecContext(ctx, query, s.Key, s.ValueEN, s.ValueES); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert setting %q: %w", s.Key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settings tx: %w", err)
	}
	return nil
}
