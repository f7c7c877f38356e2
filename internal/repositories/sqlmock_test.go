package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserWriteRepository_Save_MapsUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"})

	repo := NewUserWriteRepository(db)
	err := repo.Save(context.Background(), 1, "alice@example.com", "hash")

	assert.True(t, errors.Is(err, ErrUniqueViolation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_PassesThroughOtherErrors(t *testing.T) {
	db, mock := newMockDB(t)

	driverErr := errors.New("connection reset")
	mock.ExpectExec("INSERT INTO users").WillReturnError(driverErr)

	repo := NewUserWriteRepository(db)
	err := repo.Save(context.Background(), 1, "alice@example.com", "hash")

	assert.False(t, errors.Is(err, ErrUniqueViolation))
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendshipWriteRepository_Save_MapsUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO friends").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "friends_pkey"})

	repo := NewFriendshipWriteRepository(db)
	err := repo.Save(context.Background(), 1, 2, "Bob")

	assert.True(t, errors.Is(err, ErrUniqueViolation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID_QueryError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id, email, hashed_password, is_active").
		WillReturnError(errors.New("query failed"))

	repo := NewUserReadRepository(db)
	user, err := repo.GetByID(context.Background(), 1)

	assert.Nil(t, user)
	assert.ErrorContains(t, err, "query failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}
