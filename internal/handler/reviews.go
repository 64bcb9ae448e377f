package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/spot-rental/internal/model"
	"github.com/iliyamo/spot-rental/internal/repository"
)

// ReviewHandler serves review creation. Reviews are immutable once posted,
// so there are no update or delete endpoints.
type ReviewHandler struct {
	Reviews *repository.ReviewRepo
	Spots   *repository.SpotRepo
}

func NewReviewHandler(reviews *repository.ReviewRepo, spots *repository.SpotRepo) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews, Spots: spots}
}

// CreateForSpot handles POST /api/spots/:id/reviews and responds with the
// refreshed spot detail so the client can replace its copy in one step.
func (h *ReviewHandler) CreateForSpot(c echo.Context) error {
	u := currentUser(c)
	spotID, err := pathID(c)
	if err != nil || spotID == 0 {
		return fail(c, http.StatusBadRequest, "invalid spot id")
	}
	var in model.ReviewInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := model.Validate(in); errs.Has() {
		return fieldErrors(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Spots.OwnerOf(ctx, spotID); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "spot not found")
		}
		logger.Error().Err(err).Uint64("spot_id", spotID).Msg("review spot lookup failed")
		return fail(c, http.StatusInternalServerError, "could not create review")
	}

	rv := model.Review{
		SpotID: spotID,
		Author: u.Public(),
		Body:   in.Body,
	}
	if err := h.Reviews.Create(ctx, &rv); err != nil {
		logger.Error().Err(err).Uint64("spot_id", spotID).Msg("create review failed")
		return fail(c, http.StatusInternalServerError, "could not create review")
	}

	spot, err := h.Spots.GetDetail(ctx, spotID)
	if err != nil {
		logger.Error().Err(err).Uint64("spot_id", spotID).Msg("reload spot after review failed")
		return fail(c, http.StatusInternalServerError, "could not create review")
	}
	return c.JSON(http.StatusCreated, echo.Map{"spot": spot})
}
