package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/spot-rental/internal/model"
	"github.com/iliyamo/spot-rental/internal/repository"
)

// ImageHandler registers and removes image URLs. The bytes themselves go
// straight from the client to object storage; see StorageHandler for the
// signing step.
type ImageHandler struct {
	Images *repository.ImageRepo
	Spots  *repository.SpotRepo
}

func NewImageHandler(images *repository.ImageRepo, spots *repository.SpotRepo) *ImageHandler {
	return &ImageHandler{Images: images, Spots: spots}
}

type registerImageReq struct {
	SpotID uint64 `json:"spotId"`
	URL    string `json:"url"`
}

// ListForSpot handles GET /api/spots/:id/images.
func (h *ImageHandler) ListForSpot(c echo.Context) error {
	spotID, err := pathID(c)
	if err != nil || spotID == 0 {
		return fail(c, http.StatusBadRequest, "invalid spot id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	images, err := h.Images.ListBySpot(ctx, spotID)
	if err != nil {
		logger.Error().Err(err).Uint64("spot_id", spotID).Msg("list images failed")
		return fail(c, http.StatusInternalServerError, "could not list images")
	}
	return c.JSON(http.StatusOK, echo.Map{"images": images})
}

// Register handles POST /api/images: the third call of the upload sequence,
// storing the URL the client just PUT to object storage. Only the spot's
// owner may attach images.
func (h *ImageHandler) Register(c echo.Context) error {
	u := currentUser(c)
	var req registerImageReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	errs := model.FieldErrors{}
	if req.SpotID == 0 {
		errs["spotId"] = "is required"
	}
	if req.URL == "" {
		errs["url"] = "is required"
	}
	if errs.Has() {
		return fieldErrors(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	owner, err := h.Spots.OwnerOf(ctx, req.SpotID)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "spot not found")
		}
		logger.Error().Err(err).Uint64("spot_id", req.SpotID).Msg("image spot lookup failed")
		return fail(c, http.StatusInternalServerError, "could not register image")
	}
	if owner != u.ID {
		return fail(c, http.StatusForbidden, "forbidden")
	}

	img := model.Image{SpotID: req.SpotID, URL: req.URL}
	if err := h.Images.Create(ctx, &img); err != nil {
		logger.Error().Err(err).Uint64("spot_id", req.SpotID).Msg("create image failed")
		return fail(c, http.StatusInternalServerError, "could not register image")
	}
	return c.JSON(http.StatusCreated, echo.Map{"image": img})
}

// Delete handles DELETE /api/images/:id, gated on the owning spot's owner.
func (h *ImageHandler) Delete(c echo.Context) error {
	u := currentUser(c)
	id, err := pathID(c)
	if err != nil || id == 0 {
		return fail(c, http.StatusBadRequest, "invalid image id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	spotID, err := h.Images.SpotOf(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "image not found")
		}
		logger.Error().Err(err).Uint64("image_id", id).Msg("image lookup failed")
		return fail(c, http.StatusInternalServerError, "could not delete image")
	}
	owner, err := h.Spots.OwnerOf(ctx, spotID)
	if err != nil {
		logger.Error().Err(err).Uint64("spot_id", spotID).Msg("image owner lookup failed")
		return fail(c, http.StatusInternalServerError, "could not delete image")
	}
	if owner != u.ID {
		return fail(c, http.StatusForbidden, "forbidden")
	}
	if err := h.Images.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "image not found")
		}
		logger.Error().Err(err).Uint64("image_id", id).Msg("delete image failed")
		return fail(c, http.StatusInternalServerError, "could not delete image")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success"})
}
