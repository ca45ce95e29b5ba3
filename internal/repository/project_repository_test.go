package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmontiron/portfolio-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlite")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestProjectRepositoryListOrdering(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewProjectRepository(db)
	rows := sqlmock.NewRows([]string{"id", "title", "description_en", "description_es", "impact_en", "impact_es", "stack", "link", "images", "featured", "sort_order", "created_at"}).
		AddRow(2, "ARKUM", "desc", "desc-es", "", "", `["Symfony","PHP"]`, "https://example.com", "[]", true, 1, time.Now()).
		AddRow(1, "Side project", "", "", "", "", "[]", "", "[]", false, 2, time.Now())
	mock.ExpectQuery("SELECT id, title, .+ FROM projects ORDER BY featured DESC, sort_order ASC, id ASC").
		WillReturnRows(rows)

	result, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "ARKUM", result[0].Title)
	assert.True(t, result[0].Featured)
	assert.Equal(t, models.StringList{"Symfony", "PHP"}, result[0].Stack)
	assert.Equal(t, models.StringList{}, result[1].Stack)
}

func TestProjectRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewProjectRepository(db)
	mock.ExpectQuery("SELECT id, title, .+ FROM projects WHERE id = .+ LIMIT 1").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProjectRepositoryMaxSortOrderEmptyTable(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewProjectRepository(db)
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(0))

	max, err := repo.MaxSortOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, max)
}

func TestProjectRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewProjectRepository(db)
	mock.ExpectExec("INSERT INTO projects").
		WithArgs("ARKUM", "desc", "", "", "", `["Go"]`, "https://example.com", "[]", true, 3, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	project := &models.Project{
		Title:         "ARKUM",
		DescriptionEN: "desc",
		Stack:         models.StringList{"Go"},
		Link:          "https://example.com",
		Images:        models.StringList{},
		Featured:      true,
		SortOrder:     3,
	}
	require.NoError(t, repo.Create(context.Background(), project))
	assert.Equal(t, int64(7), project.ID)
	assert.False(t, project.CreatedAt.IsZero())
}

func TestProjectRepositoryDeleteReportsAffected(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewProjectRepository(db)
	mock.ExpectExec("DELETE FROM projects").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
