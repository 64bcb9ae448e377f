package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/spot-rental/internal/repository"
)

func newBookingHandler(t *testing.T) (*BookingHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBookingHandler(repository.NewBookingRepo(db), repository.NewSpotRepo(db)), mock
}

func TestCreateBookingRejectsInvertedDates(t *testing.T) {
	h, mock := newBookingHandler(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/spots/7/bookings",
		`{"startDate":"2026-09-05","endDate":"2026-09-01"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")
	authenticate(c, 1, "traveler1")

	require.NoError(t, h.CreateForSpot(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "must be after the start date")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingRejectsEqualDates(t *testing.T) {
	h, mock := newBookingHandler(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/spots/7/bookings",
		`{"startDate":"2026-09-05","endDate":"2026-09-05"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")
	authenticate(c, 1, "traveler1")

	require.NoError(t, h.CreateForSpot(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingByNonRenterIsForbidden(t *testing.T) {
	h, mock := newBookingHandler(t)

	mock.ExpectQuery("SELECT user_id FROM bookings").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(2))

	c, rec := newJSONContext(t, http.MethodDelete, "/api/bookings/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	authenticate(c, 1, "traveler1")

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
