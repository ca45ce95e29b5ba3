package models

import "time"

// ContactMessage is a public contact form submission. Immutable except
// for the read flag.
type ContactMessage struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	Reason    *string   `db:"reason" json:"reason,omitempty"`
	Read      bool      `db:"read" json:"read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
