package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const defaultAdminUsername = "admin"

// EnsureAdmin creates the initial admin account when none exists. Only
// the hash is stored; the password itself is never written to logs.
func EnsureAdmin(ctx context.Context, db *sqlx.DB, password string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM admin_users"); err != nil {
		return fmt.Errorf("count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = db.ExecContext(ctx,
		"INSERT INTO admin_users (username, password_hash, created_at) VALUES (?, ?, ?)",
		defaultAdminUsername, string(hash), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Warn("created default admin account, change its password after first login",
		zap.String("username", defaultAdminUsername))
	return nil
}
