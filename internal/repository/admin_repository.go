package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fmontiron/portfolio-api/internal/models"
)

// AdminRepository provides database access for the admin account.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new instance of AdminRepository.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// FindByUsername returns an admin user by username.
func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	const query = `SELECT id, username, password_hash, created_at FROM admin_users WHERE username = ? LIMIT 1`
	var user models.AdminUser
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find admin by username: %w", err)
	}
	return &user, nil
}

// FindByID returns an admin user by identifier.
func (r *AdminRepository) FindByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	const query = `SELECT id, username, password_hash, created_at FROM admin_users WHERE id = ? LIMIT 1`
	var user models.AdminUser
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find admin by id: %w", err)
	}
	return &user, nil
}

// UpdatePassword replaces the stored password hash.
func (r *AdminRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE admin_users SET password_hash = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, passwordHash, id); err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}
	return nil
}
