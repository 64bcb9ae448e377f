package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/spot-rental/internal/config"
	"github.com/iliyamo/spot-rental/internal/repository"
)

func testConfig() config.Config {
	return config.Config{
		Env:           "dev",
		SessionSecret: "test-secret",
		SessionTTLHrs: 24,
		BcryptCost:    bcrypt.MinCost,
	}
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSignupCreatesUserAndSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("traveler1", "t@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT id,username,email FROM users").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(5, "traveler1", "t@example.com"))

	h := NewUserHandler(testConfig(), repository.NewUserRepo(db))
	c, rec := newJSONContext(t, http.MethodPost, "/api/users",
		`{"username":"traveler1","email":"t@example.com","password":"secret123"}`)

	require.NoError(t, h.Signup(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, `"username":"traveler1"`)
	require.Contains(t, body, `"email":"t@example.com"`)
	require.NotContains(t, body, "hashedPassword")
	require.NotContains(t, body, "$2a")

	// Signup logs the user in; the session cookie must be set.
	require.Contains(t, rec.Header().Get("Set-Cookie"), "token=")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignupRejectsInvalidInputWithoutTouchingDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	h := NewUserHandler(testConfig(), repository.NewUserRepo(db))
	c, rec := newJSONContext(t, http.MethodPost, "/api/users",
		`{"username":"user@example.com","email":"t@example.com","password":"secret123"}`)

	require.NoError(t, h.Signup(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Cannot be an email address.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignupDuplicateUsernameIsFieldError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("traveler1", "t@example.com", sqlmock.AnyArg()).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'traveler1' for key 'users.uq_users_username'"))

	h := NewUserHandler(testConfig(), repository.NewUserRepo(db))
	c, rec := newJSONContext(t, http.MethodPost, "/api/users",
		`{"username":"traveler1","email":"t@example.com","password":"secret123"}`)

	require.NoError(t, h.Signup(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"username":"is already taken"`)
	require.NoError(t, mock.ExpectationsWereMet())
}
