package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/spot-rental/internal/config"
	"github.com/iliyamo/spot-rental/internal/model"
	"github.com/iliyamo/spot-rental/internal/repository"
	"github.com/iliyamo/spot-rental/internal/utils"
)

// UserHandler serves signup.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewUserHandler(cfg config.Config, users *repository.UserRepo) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users}
}

// Signup handles POST /api/users: validate shape constraints, hash, persist,
// and log the new user straight in by setting the session cookie. Duplicate
// username/email collisions come back as field errors like any other
// validation failure.
func (h *UserHandler) Signup(c echo.Context) error {
	var in model.SignupInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := model.Validate(in); errs.Has() {
		return fieldErrors(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	uid, err := h.Users.Create(ctx, in.Username, in.Email, in.Password, h.Cfg.BcryptCost)
	if err != nil {
		switch err {
		case repository.ErrUsernameExists:
			return fieldErrors(c, model.FieldErrors{"username": "is already taken"})
		case repository.ErrEmailExists:
			return fieldErrors(c, model.FieldErrors{"email": "is already registered"})
		}
		logger.Error().Err(err).Msg("signup insert failed")
		return fail(c, http.StatusInternalServerError, "could not create user")
	}

	user, err := h.Users.GetAuthenticatedByID(ctx, uid)
	if err != nil {
		logger.Error().Err(err).Uint64("user_id", uid).Msg("load created user failed")
		return fail(c, http.StatusInternalServerError, "could not create user")
	}

	token, exp, err := utils.NewSessionToken(h.Cfg.SessionSecret, user.ID, h.Cfg.SessionTTLHrs)
	if err != nil {
		logger.Error().Err(err).Msg("issue session token failed")
		return fail(c, http.StatusInternalServerError, "could not create session")
	}
	utils.SetSessionCookie(c.Response(), token, exp, h.Cfg.Env)

	return c.JSON(http.StatusCreated, echo.Map{"user": user})
}
