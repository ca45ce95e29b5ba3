package database

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/fmontiron/portfolio-api/pkg/config"
)

func init() {
	// The modernc driver registers as "sqlite", which sqlx does not know
	// out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// NewSQLite opens (creating if necessary) the embedded store file.
func NewSQLite(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?%s", cfg.Path, url.Values{
		"_pragma": []string{"foreign_keys(1)", "busy_timeout(5000)", "journal_mode(WAL)"},
	}.Encode())

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite serialises writers itself; a single connection avoids
	// SQLITE_BUSY churn under the request-per-call model.
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
