package users

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*Repo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepo(db), mock
}

func userRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(int64(1), "alice", "alice@example.com", "hash", now, now)
}

func TestRepoCreate(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "alice@example.com", "hash").
		WillReturnRows(userRows())

	u, err := repo.Create(context.Background(), "alice", "alice@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "alice", u.Username)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoCreateDuplicates(t *testing.T) {
	t.Run("username unique violation", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		_, err := repo.Create(context.Background(), "alice", "alice@example.com", "hash")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("email unique violation", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := repo.Create(context.Background(), "bob", "alice@example.com", "hash")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestRepoGetByUsername(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at, updated_at`).
		WithArgs("alice").
		WillReturnRows(userRows())

	u, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
}

func TestRepoGetByUsernameNotFound(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at, updated_at`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
