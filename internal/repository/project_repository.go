package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fmontiron/portfolio-api/internal/models"
)

// ProjectRepository provides database access for portfolio projects.
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new instance of ProjectRepository.
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, title, description_en, description_es, impact_en, impact_es, stack, link, images, featured, sort_order, created_at`

// List returns all projects: featured first, then by sort order and id.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY featured DESC, sort_order ASC, id ASC`
	var projects []models.Project
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// FindByID returns a single project. sql.ErrNoRows passes through so the
// service can map it to a not-found response.
func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ? LIMIT 1`
	var project models.Project
	if err := r.db.GetContext(ctx, &project, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return &project, nil
}

// MaxSortOrder returns the highest sort_order, or 0 for an empty table.
func (r *ProjectRepository) MaxSortOrder(ctx context.Context) (int, error) {
	const query = `SELECT COALESCE(MAX(sort_order), 0) FROM projects`
	var max int
	if err := r.db.GetContext(ctx, &max, query); err != nil {
		return 0, fmt.Errorf("max project sort order: %w", err)
	}
	return max, nil
}

// Create inserts the project and fills in its assigned id and timestamp.
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	const query = `INSERT INTO projects (title, description_en, description_es, impact_en, impact_es, stack, link, images, featured, sort_order, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	p.CreatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		p.Title, p.DescriptionEN, p.DescriptionES, p.ImpactEN, p.ImpactES,
		p.Stack, p.Link, p.Images, p.Featured, p.SortOrder, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("project insert id: %w", err)
	}
	p.ID = id
	return nil
}

// Update overwrites all mutable columns of the project row.
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	const query = `UPDATE projects SET title = ?, description_en = ?, description_es = ?, impact_en = ?, impact_es = ?,
stack = ?, link = ?, images = ?, featured = ?, sort_order = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query,
		p.Title, p.DescriptionEN, p.DescriptionES, p.ImpactEN, p.ImpactES,
		p.Stack, p.Link, p.Images, p.Featured, p.SortOrder, p.ID); err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes the row and reports how many rows were affected.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM projects WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete project affected rows: %w", err)
	}
	return affected, nil
}
