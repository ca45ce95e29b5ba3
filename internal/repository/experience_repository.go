package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fmontiron/portfolio-api/internal/models"
)

// ExperienceRepository provides database access for experience entries.
type ExperienceRepository struct {
	db *sqlx.DB
}

// NewExperienceRepository creates a new instance of ExperienceRepository.
func NewExperienceRepository(db *sqlx.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

const experienceColumns = `id, role, company, period, description_en, description_es, tech, type, context, layout_delay`

// List returns all experiences in insertion order.
func (r *ExperienceRepository) List(ctx context.Context) ([]models.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences ORDER BY id ASC`
	var experiences []models.Experience
	if err := r.db.SelectContext(ctx, &experiences, query); err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return experiences, nil
}

// FindByID returns a single experience, passing sql.ErrNoRows through.
func (r *ExperienceRepository) FindByID(ctx context.Context, id int64) (*models.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = ? LIMIT 1`
	var experience models.Experience
	if err := r.db.GetContext(ctx, &experience, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find experience by id: %w", err)
	}
	return &experience, nil
}

// Create inserts the experience and fills in its assigned id.
func (r *ExperienceRepository) Create(ctx context.Context, e *models.Experience) error {
	const query = `INSERT INTO experiences (role, company, period, description_en, description_es, tech, type, context, layout_delay)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.Role, e.Company, e.Period, e.DescriptionEN, e.DescriptionES,
		e.Tech, e.Type, e.Context, e.LayoutDelay)
	if err != nil {
		return fmt.Errorf("insert experience: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("experience insert id: %w", err)
	}
	e.ID = id
	return nil
}

// Update overwrites all columns of the experience row.
func (r *ExperienceRepository) Update(ctx context.Context, e *models.Experience) error {
	const query = `UPDATE experiences SET role = ?, company = ?, period = ?, description_en = ?, description_es = ?,
tech = ?, type = ?, context = ?, layout_delay = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query,
		e.Role, e.Company, e.Period, e.DescriptionEN, e.DescriptionES,
		e.Tech, e.Type, e.Context, e.LayoutDelay, e.ID); err != nil {
		return fmt.Errorf("update experience: %w", err)
	}
	return nil
}

// Delete removes the row and reports how many rows were affected.
func (r *ExperienceRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM experiences WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete experience: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete experience affected rows: %w", err)
	}
	return affected, nil
}
