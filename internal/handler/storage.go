package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/spot-rental/internal/model"
	"github.com/iliyamo/spot-rental/internal/storage"
)

// StorageHandler serves the first call of the two-phase upload: handing the
// client a pre-signed PUT target. Signing failures surface as a 503 message
// that the client shows as the per-file status; there is no retry here.
type StorageHandler struct {
	Signer storage.UploadSigner
}

func NewStorageHandler(signer storage.UploadSigner) *StorageHandler {
	return &StorageHandler{Signer: signer}
}

// SignUpload handles GET /api/aws/sign-s3?file-name=&file-type=.
func (h *StorageHandler) SignUpload(c echo.Context) error {
	fileName := c.QueryParam("file-name")
	fileType := c.QueryParam("file-type")
	errs := model.FieldErrors{}
	if fileName == "" {
		errs["file-name"] = "is required"
	}
	if fileType == "" {
		errs["file-type"] = "is required"
	}
	if errs.Has() {
		return fieldErrors(c, errs)
	}

	signed, publicURL, err := h.Signer.SignPut(c.Request().Context(), fileName, fileType)
	if err != nil {
		logger.Error().Err(err).Str("file", fileName).Msg("presign upload failed")
		return fail(c, http.StatusServiceUnavailable, "could not sign upload")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"signedRequest": signed,
		"url":           publicURL,
	})
}
