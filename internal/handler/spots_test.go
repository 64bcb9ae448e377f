package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/spot-rental/internal/middleware"
	"github.com/iliyamo/spot-rental/internal/model"
	"github.com/iliyamo/spot-rental/internal/repository"
)

func authenticate(c echo.Context, id uint64, username string) {
	u := model.AuthenticatedUser{ID: id, Username: username, Email: username + "@example.com"}
	c.Set(middleware.UserKey, &u)
	c.Set(middleware.UserIDKey, u.ID)
}

func newSpotHandler(t *testing.T) (*SpotHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSpotHandler(repository.NewSpotRepo(db), repository.NewFavoriteRepo(db)), mock
}

func TestCreateSpotMissingPriceIsFieldError(t *testing.T) {
	h, mock := newSpotHandler(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/spots",
		`{"address":"1 Main St","city":"Lisbon","state":"Lisboa","country":"Portugal","name":"Cozy loft"}`)
	authenticate(c, 1, "traveler1")

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"price"`)
	// Validation failures never reach the database.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListMySpotsRequiresAuth(t *testing.T) {
	h, mock := newSpotHandler(t)
	c, rec := newJSONContext(t, http.MethodGet, "/api/spots?selection=my-spots", "")

	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListFavoritesRequiresAuth(t *testing.T) {
	h, mock := newSpotHandler(t)
	c, rec := newJSONContext(t, http.MethodGet, "/api/spots?selection=favorites", "")

	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSpotByNonOwnerIsForbidden(t *testing.T) {
	h, mock := newSpotHandler(t)

	// The spot belongs to user 2; user 1 is calling.
	mock.ExpectQuery("SELECT user_id FROM spots").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(2))

	c, rec := newJSONContext(t, http.MethodPut, "/api/spots/7",
		`{"address":"1 Main St","city":"Lisbon","state":"Lisboa","country":"Portugal","name":"Cozy loft","price":120}`)
	c.SetParamNames("id")
	c.SetParamValues("7")
	authenticate(c, 1, "traveler1")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
	// No UPDATE statement may run after the gate rejects.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingSpotIsNotFound(t *testing.T) {
	h, mock := newSpotHandler(t)

	mock.ExpectQuery("SELECT user_id FROM spots").
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	c, rec := newJSONContext(t, http.MethodDelete, "/api/spots/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	authenticate(c, 1, "traveler1")

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteIsIdempotent(t *testing.T) {
	h, mock := newSpotHandler(t)

	mock.ExpectQuery("SELECT user_id FROM spots").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(2))
	mock.ExpectExec("INSERT INTO favorites").
		WithArgs(uint64(1), uint64(7)).
		WillReturnError(&alreadyFavorited{})

	c, rec := newJSONContext(t, http.MethodPut, "/api/spots/7/favorite", "")
	c.SetParamNames("id")
	c.SetParamValues("7")
	authenticate(c, 1, "traveler1")

	require.NoError(t, h.Favorite(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"message":"success"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

type alreadyFavorited struct{}

func (*alreadyFavorited) Error() string {
	return "Error 1062 (23000): Duplicate entry '1-7' for key 'favorites.PRIMARY'"
}
