package repository

import (
	"context"
	"testing"
	"time"

	"commerce_api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepoWithMock(t *testing.T) (UserRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock), mock
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alice", "alice@example.com", "hash", model.RoleEmployee, false, false).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))

	user := &model.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         model.RoleEmployee,
	}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alice", "alice@example.com", "hash", model.RoleEmployee, false, false).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	user := &model.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         model.RoleEmployee,
	}
	err := repo.Create(context.Background(), user)

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{
		"id", "name", "email", "password_hash", "role", "verified", "is_logged_in", "created_at", "updated_at",
	}).AddRow(1, "Alice", "alice@example.com", "hash", model.RoleAdmin, true, false, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "alice@example.com")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.True(t, user.Verified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByEmail(context.Background(), "ghost@example.com")

	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAll(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{
		"id", "name", "email", "role", "verified", "is_logged_in", "created_at", "updated_at",
	}).
		AddRow(1, "Alice", "alice@example.com", model.RoleAdmin, true, true, now, now).
		AddRow(2, "Bob", "bob@example.com", model.RoleEmployee, false, false, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM users ORDER BY id`).WillReturnRows(rows)

	users, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bob", users[1].Name)
	assert.Empty(t, users[0].PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateLoginState(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectExec(`UPDATE users SET verified`).
		WithArgs(true, true, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateLoginState(context.Background(), 1, true, true)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetLoggedIn_NotFound(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectExec(`UPDATE users SET is_logged_in`).
		WithArgs(false, 99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.SetLoggedIn(context.Background(), 99, false)

	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
