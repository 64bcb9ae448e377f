package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/spot-rental/internal/config"
	"github.com/iliyamo/spot-rental/internal/model"
	"github.com/iliyamo/spot-rental/internal/repository"
	"github.com/iliyamo/spot-rental/internal/utils"
)

// SessionHandler serves login, logout and session restore.
type SessionHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewSessionHandler(cfg config.Config, users *repository.UserRepo) *SessionHandler {
	return &SessionHandler{Cfg: cfg, Users: users}
}

// Login handles POST /api/session. The credential may be a username or an
// email. Unknown credential and wrong password produce the same 401 so the
// response does not reveal which accounts exist.
func (h *SessionHandler) Login(c echo.Context) error {
	var in model.LoginInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := model.Validate(in); errs.Has() {
		return fieldErrors(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByCredential(ctx, in.Credential)
	if err != nil && err != repository.ErrNotFound {
		logger.Error().Err(err).Msg("login lookup failed")
		return fail(c, http.StatusInternalServerError, "login failed")
	}
	if err == repository.ErrNotFound || !utils.VerifyPassword(u.HashedPassword, in.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"errors": model.FieldErrors{"credential": "The provided credentials were invalid."},
		})
	}

	token, exp, err := utils.NewSessionToken(h.Cfg.SessionSecret, u.ID, h.Cfg.SessionTTLHrs)
	if err != nil {
		logger.Error().Err(err).Msg("issue session token failed")
		return fail(c, http.StatusInternalServerError, "login failed")
	}
	utils.SetSessionCookie(c.Response(), token, exp, h.Cfg.Env)

	return c.JSON(http.StatusOK, echo.Map{
		"user": model.AuthenticatedUser{ID: u.ID, Username: u.Username, Email: u.Email},
	})
}

// Show handles GET /api/session: it returns the restored user, or an
// explicit null for anonymous callers so the client can settle its session
// slice either way.
func (h *SessionHandler) Show(c echo.Context) error {
	if u := currentUser(c); u != nil {
		return c.JSON(http.StatusOK, echo.Map{"user": u})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": nil})
}

// Logout handles DELETE /api/session by clearing the cookie. The token
// itself is stateless, so there is nothing to revoke server-side.
func (h *SessionHandler) Logout(c echo.Context) error {
	utils.ClearSessionCookie(c.Response(), h.Cfg.Env)
	return c.JSON(http.StatusOK, echo.Map{"message": "success"})
}
