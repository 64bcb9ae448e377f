// Package handler contains the HTTP handlers for every API resource. Each
// handler struct bundles the repositories it needs; middleware has already
// restored the session user (when present) before any handler runs.
package handler

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iliyamo/spot-rental/internal/middleware"
	"github.com/iliyamo/spot-rental/internal/model"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "handler").Logger()

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// currentUser returns the restored session user or nil for anonymous calls.
func currentUser(c echo.Context) *model.AuthenticatedUser {
	return middleware.CurrentUser(c)
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// fieldErrors writes the 400 envelope for user-correctable input problems.
func fieldErrors(c echo.Context, errs model.FieldErrors) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
}

// fail writes the {"message": ...} envelope used for every non-field error.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"message": msg})
}
