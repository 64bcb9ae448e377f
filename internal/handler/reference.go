package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/spot-rental/internal/repository"
)

// ReferenceHandler serves the static reference lists. Both routes sit
// behind the Redis response cache, so the database only sees the occasional
// cache miss.
type ReferenceHandler struct {
	Amenities *repository.AmenityRepo
	Districts *repository.DistrictRepo
}

func NewReferenceHandler(amenities *repository.AmenityRepo, districts *repository.DistrictRepo) *ReferenceHandler {
	return &ReferenceHandler{Amenities: amenities, Districts: districts}
}

// ListAmenities handles GET /api/amenities.
func (h *ReferenceHandler) ListAmenities(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	amenities, err := h.Amenities.ListAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list amenities failed")
		return fail(c, http.StatusInternalServerError, "could not list amenities")
	}
	return c.JSON(http.StatusOK, echo.Map{"amenities": amenities})
}

// ListDistricts handles GET /api/districts.
func (h *ReferenceHandler) ListDistricts(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	districts, err := h.Districts.ListAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list districts failed")
		return fail(c, http.StatusInternalServerError, "could not list districts")
	}
	return c.JSON(http.StatusOK, echo.Map{"districts": districts})
}
