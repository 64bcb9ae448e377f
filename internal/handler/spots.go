package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/spot-rental/internal/model"
	"github.com/iliyamo/spot-rental/internal/repository"
)

// SpotHandler serves spot CRUD, the scoped list selections and favoriting.
type SpotHandler struct {
	Spots     *repository.SpotRepo
	Favorites *repository.FavoriteRepo
}

func NewSpotHandler(spots *repository.SpotRepo, favorites *repository.FavoriteRepo) *SpotHandler {
	if spots == nil || favorites == nil {
		panic("nil repository passed to NewSpotHandler")
	}
	return &SpotHandler{Spots: spots, Favorites: favorites}
}

// List handles GET /api/spots with the optional selection query parameter.
// "my-spots" and "favorites" scope the list to the authenticated caller and
// reject anonymous requests; the default selection is public.
func (h *SpotHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	var (
		spots []model.SpotSummary
		err   error
	)
	switch c.QueryParam("selection") {
	case "my-spots":
		u := currentUser(c)
		if u == nil {
			return fail(c, http.StatusUnauthorized, "authentication required")
		}
		spots, err = h.Spots.ListByOwner(ctx, u.ID)
	case "favorites":
		u := currentUser(c)
		if u == nil {
			return fail(c, http.StatusUnauthorized, "authentication required")
		}
		spots, err = h.Spots.ListFavorites(ctx, u.ID)
	default:
		spots, err = h.Spots.List(ctx)
	}
	if err != nil {
		logger.Error().Err(err).Msg("list spots failed")
		return fail(c, http.StatusInternalServerError, "could not list spots")
	}
	return c.JSON(http.StatusOK, echo.Map{"spots": spots})
}

// Get handles GET /api/spots/:id and returns the denormalized detail view.
func (h *SpotHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil || id == 0 {
		return fail(c, http.StatusBadRequest, "invalid spot id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	spot, err := h.Spots.GetDetail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "spot not found")
		}
		logger.Error().Err(err).Uint64("spot_id", id).Msg("load spot failed")
		return fail(c, http.StatusInternalServerError, "could not load spot")
	}
	return c.JSON(http.StatusOK, echo.Map{"spot": spot})
}

// Create handles POST /api/spots.
func (h *SpotHandler) Create(c echo.Context) error {
	u := currentUser(c)
	var in model.SpotInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := model.Validate(in); errs.Has() {
		return fieldErrors(c, errs)
	}

	spot := spotFromInput(in)
	spot.UserID = u.ID

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Spots.Create(ctx, &spot, in.AmenityIDs); err != nil {
		logger.Error().Err(err).Msg("create spot failed")
		return fail(c, http.StatusInternalServerError, "could not create spot")
	}

	created, err := h.Spots.GetDetail(ctx, spot.ID)
	if err != nil {
		logger.Error().Err(err).Uint64("spot_id", spot.ID).Msg("reload created spot failed")
		return fail(c, http.StatusInternalServerError, "could not create spot")
	}
	return c.JSON(http.StatusCreated, echo.Map{"spot": created})
}

// Update handles PUT /api/spots/:id. Only the owner may update; anyone else
// gets 403 and the row stays untouched.
func (h *SpotHandler) Update(c echo.Context) error {
	u := currentUser(c)
	id, err := pathID(c)
	if err != nil || id == 0 {
		return fail(c, http.StatusBadRequest, "invalid spot id")
	}
	var in model.SpotInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := model.Validate(in); errs.Has() {
		return fieldErrors(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.requireOwner(c, id, u.ID); err != nil {
		return err
	}

	spot := spotFromInput(in)
	spot.ID = id
	spot.UserID = u.ID
	if err := h.Spots.Update(ctx, &spot, in.AmenityIDs); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "spot not found")
		}
		logger.Error().Err(err).Uint64("spot_id", id).Msg("update spot failed")
		return fail(c, http.StatusInternalServerError, "could not update spot")
	}

	updated, err := h.Spots.GetDetail(ctx, id)
	if err != nil {
		logger.Error().Err(err).Uint64("spot_id", id).Msg("reload updated spot failed")
		return fail(c, http.StatusInternalServerError, "could not update spot")
	}
	return c.JSON(http.StatusOK, echo.Map{"spot": updated})
}

// Delete handles DELETE /api/spots/:id. Images, reviews, bookings and
// favorite marks disappear with the spot through the schema cascades.
func (h *SpotHandler) Delete(c echo.Context) error {
	u := currentUser(c)
	id, err := pathID(c)
	if err != nil || id == 0 {
		return fail(c, http.StatusBadRequest, "invalid spot id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.requireOwner(c, id, u.ID); err != nil {
		return err
	}
	if err := h.Spots.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "spot not found")
		}
		logger.Error().Err(err).Uint64("spot_id", id).Msg("delete spot failed")
		return fail(c, http.StatusInternalServerError, "could not delete spot")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "id": strconv.FormatUint(id, 10)})
}

// Favorite handles PUT /api/spots/:id/favorite.
func (h *SpotHandler) Favorite(c echo.Context) error {
	return h.setFavorite(c, true)
}

// Unfavorite handles DELETE /api/spots/:id/favorite.
func (h *SpotHandler) Unfavorite(c echo.Context) error {
	return h.setFavorite(c, false)
}

func (h *SpotHandler) setFavorite(c echo.Context, mark bool) error {
	u := currentUser(c)
	id, err := pathID(c)
	if err != nil || id == 0 {
		return fail(c, http.StatusBadRequest, "invalid spot id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	// The spot must exist; favoriting is open to any authenticated user.
	if _, err := h.Spots.OwnerOf(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "spot not found")
		}
		logger.Error().Err(err).Uint64("spot_id", id).Msg("favorite lookup failed")
		return fail(c, http.StatusInternalServerError, "could not update favorite")
	}
	if mark {
		err = h.Favorites.Add(ctx, u.ID, id)
	} else {
		err = h.Favorites.Remove(ctx, u.ID, id)
	}
	if err != nil {
		logger.Error().Err(err).Uint64("spot_id", id).Msg("favorite write failed")
		return fail(c, http.StatusInternalServerError, "could not update favorite")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success"})
}

// requireOwner is the ownership gate: it loads the spot's owner and rejects
// with 403 when the caller is someone else, or 404 when the spot is gone.
func (h *SpotHandler) requireOwner(c echo.Context, spotID, userID uint64) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	owner, err := h.Spots.OwnerOf(ctx, spotID)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "spot not found")
		}
		logger.Error().Err(err).Uint64("spot_id", spotID).Msg("owner lookup failed")
		return fail(c, http.StatusInternalServerError, "could not load spot")
	}
	if owner != userID {
		return fail(c, http.StatusForbidden, "forbidden")
	}
	return nil
}

func spotFromInput(in model.SpotInput) model.Spot {
	visible := true
	if in.Visible != nil {
		visible = *in.Visible
	}
	return model.Spot{
		DistrictID:  in.DistrictID,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Country:     in.Country,
		Name:        in.Name,
		Description: in.Description,
		Price:       strconv.FormatFloat(*in.Price, 'f', 2, 64),
		Visible:     visible,
	}
}
