package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/spot-rental/internal/model"
	"github.com/iliyamo/spot-rental/internal/queue"
	"github.com/iliyamo/spot-rental/internal/repository"
	queue_publisher "github.com/iliyamo/spot-rental/internal/service"
)

// BookingHandler serves booking creation, the caller's booking list and
// cancellation.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Spots    *repository.SpotRepo
}

func NewBookingHandler(bookings *repository.BookingRepo, spots *repository.SpotRepo) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Spots: spots}
}

// ListMine handles GET /api/bookings.
func (h *BookingHandler) ListMine(c echo.Context) error {
	u := currentUser(c)
	ctx, cancel := reqCtx(c)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, u.ID)
	if err != nil {
		logger.Error().Err(err).Msg("list bookings failed")
		return fail(c, http.StatusInternalServerError, "could not list bookings")
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}

// CreateForSpot handles POST /api/spots/:id/bookings. After the insert a
// booking.created event is published; publish failures are logged and
// swallowed because the booking itself already succeeded.
func (h *BookingHandler) CreateForSpot(c echo.Context) error {
	u := currentUser(c)
	spotID, err := pathID(c)
	if err != nil || spotID == 0 {
		return fail(c, http.StatusBadRequest, "invalid spot id")
	}
	var in model.BookingInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := model.Validate(in); errs.Has() {
		return fieldErrors(c, errs)
	}
	start, _ := time.Parse("2006-01-02", in.StartDate)
	end, _ := time.Parse("2006-01-02", in.EndDate)
	if !end.After(start) {
		return fieldErrors(c, model.FieldErrors{"endDate": "must be after the start date"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	spot, err := h.Spots.GetDetail(ctx, spotID)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "spot not found")
		}
		logger.Error().Err(err).Uint64("spot_id", spotID).Msg("booking spot lookup failed")
		return fail(c, http.StatusInternalServerError, "could not create booking")
	}

	b := model.Booking{
		SpotID:    spotID,
		UserID:    u.ID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}
	if err := h.Bookings.Create(ctx, &b); err != nil {
		logger.Error().Err(err).Uint64("spot_id", spotID).Msg("create booking failed")
		return fail(c, http.StatusInternalServerError, "could not create booking")
	}

	if err := queue_publisher.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
		BookingID: b.ID,
		SpotID:    spotID,
		SpotName:  spot.Name,
		UserID:    u.ID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		logger.Warn().Err(err).Uint64("booking_id", b.ID).Msg("booking event publish failed")
	}

	return c.JSON(http.StatusCreated, echo.Map{"booking": b})
}

// Delete handles DELETE /api/bookings/:id. Only the renter may cancel.
func (h *BookingHandler) Delete(c echo.Context) error {
	u := currentUser(c)
	id, err := pathID(c)
	if err != nil || id == 0 {
		return fail(c, http.StatusBadRequest, "invalid booking id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	renter, err := h.Bookings.RenterOf(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "booking not found")
		}
		logger.Error().Err(err).Uint64("booking_id", id).Msg("renter lookup failed")
		return fail(c, http.StatusInternalServerError, "could not cancel booking")
	}
	if renter != u.ID {
		return fail(c, http.StatusForbidden, "forbidden")
	}
	if err := h.Bookings.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "booking not found")
		}
		logger.Error().Err(err).Uint64("booking_id", id).Msg("delete booking failed")
		return fail(c, http.StatusInternalServerError, "could not cancel booking")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success"})
}
