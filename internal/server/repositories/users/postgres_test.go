package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestPostgresRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("u1", "a@b.com", []byte("hash")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	user := &models.User{ID: "u1", Email: "a@b.com", PasswordHash: []byte("hash")}
	got, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, now, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Create_DBError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errors.New("duplicate key"))

	_, err := repo.Create(context.Background(), &models.User{ID: "u1"})
	assert.ErrorContains(t, err, "db error")
}

func TestPostgresRepository_GetByEmail(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPostgresRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
		AddRow("u1", "a@b.com", []byte("hash"), now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("a@b.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, []byte("hash"), user.PasswordHash)
}

func TestPostgresRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("ghost@b.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@b.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
