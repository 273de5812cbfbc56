package profile

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/mystay/email-service/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestGetProfileByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, email, role
		FROM profiles
		WHERE id = $1;
    `)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).AddRow("u1", "a@b.com", "guest"))

	p, err := repo.GetProfileByID(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, model.Profile{ID: "u1", Email: "a@b.com", Role: model.RoleGuest}, p)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, email, role
		FROM profiles
		WHERE id = $1;
    `)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetProfileByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileByID_StoreError(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, email, role
		FROM profiles
		WHERE id = $1;
    `)).
		WithArgs("u1").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetProfileByID(context.Background(), "u1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGuestFullName(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT full_name
		FROM guest_profiles
		WHERE id = $1;
    `)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"full_name"}).AddRow("Jane Doe"))

	name, err := repo.GetGuestFullName(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", name)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT full_name
		FROM guest_profiles
		WHERE id = $1;
    `)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	name, err = repo.GetGuestFullName(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Equal(t, "", name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHostName(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT first_name, last_name
		FROM host_profiles
		WHERE id = $1;
    `)).
		WithArgs("h1").
		WillReturnRows(sqlmock.NewRows([]string{"first_name", "last_name"}).AddRow("Jane", "Doe"))

	first, last, err := repo.GetHostName(context.Background(), "h1")
	assert.NoError(t, err)
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "Doe", last)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT first_name, last_name
		FROM host_profiles
		WHERE id = $1;
    `)).
		WithArgs("h2").
		WillReturnRows(sqlmock.NewRows([]string{"first_name", "last_name"}).AddRow("Jane", nil))

	first, last, err = repo.GetHostName(context.Background(), "h2")
	assert.NoError(t, err)
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "", last)
	assert.NoError(t, mock.ExpectationsWereMet())
}
