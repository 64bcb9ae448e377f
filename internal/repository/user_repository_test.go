package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUserCreateMapsDuplicateErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()
	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("traveler1", "t@example.com", sqlmock.AnyArg()).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 't@example.com' for key 'users.uq_users_email'"))

	if _, err := repo.Create(context.Background(), "traveler1", "t@example.com", "secret123", 4); err != ErrEmailExists {
		t.Fatalf("err = %v, want ErrEmailExists", err)
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs("traveler1", "t2@example.com", sqlmock.AnyArg()).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'traveler1' for key 'users.uq_users_username'"))

	if _, err := repo.Create(context.Background(), "traveler1", "t2@example.com", "secret123", 4); err != ErrUsernameExists {
		t.Fatalf("err = %v, want ErrUsernameExists", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUserCreateNormalizesEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()
	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("traveler1", "t@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(5, 1))

	id, err := repo.Create(context.Background(), " traveler1 ", " T@Example.COM ", "secret123", 4)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 5 {
		t.Fatalf("id = %d, want 5", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetAuthenticatedByIDNeverSelectsHash(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()
	repo := NewUserRepo(db)

	// The expectation only matches a projection without the hash column.
	mock.ExpectQuery(`SELECT id,username,email FROM users WHERE id=\?`).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(5, "traveler1", "t@example.com"))

	u, err := repo.GetAuthenticatedByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Username != "traveler1" || u.Email != "t@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByCredentialNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()
	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT id,username,email,hashed_password").
		WithArgs("ghost", "ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByCredential(context.Background(), "ghost"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
