package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fmontiron/portfolio-api/internal/models"
)

// ContactRepository persists contact form submissions.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates a new instance of ContactRepository.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts the message and fills in its assigned id and timestamp.
func (r *ContactRepository) Create(ctx context.Context, m *models.ContactMessage) error {
	const query = `INSERT INTO contact_messages (name, email, message, reason, read, created_at)
VALUES (?, ?, ?, ?, 0, ?)`
	m.CreatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, m.Name, m.Email, m.Message, m.Reason, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("contact message insert id: %w", err)
	}
	m.ID = id
	return nil
}

// List returns all messages, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	const query = `SELECT id, name, email, message, reason, read, created_at FROM contact_messages
ORDER BY created_at DESC, id DESC`
	var messages []models.ContactMessage
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

// MarkRead sets the read flag and reports affected rows.
func (r *ContactRepository) MarkRead(ctx context.Context, id int64) (int64, error) {
	const query = `UPDATE contact_messages SET read = 1 WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("mark contact message read: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark read affected rows: %w", err)
	}
	return affected, nil
}

// Delete removes the message and reports affected rows.
func (r *ContactRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM contact_messages WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete contact message: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete contact message affected rows: %w", err)
	}
	return affected, nil
}
