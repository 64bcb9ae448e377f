package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/spot-rental/internal/model"
	"github.com/iliyamo/spot-rental/internal/repository"
	"github.com/iliyamo/spot-rental/internal/utils"
)

// Context keys under which the restored session user is stored.
const (
	UserKey   = "user"    // *model.AuthenticatedUser
	UserIDKey = "user_id" // uint64
)

// RestoreUser returns middleware that runs on every request. It reads the
// session cookie, verifies signature and expiration, and loads the safe user
// representation into the context. Absent, invalid or expired tokens leave
// the request anonymous; this middleware never rejects a request itself.
func RestoreUser(secret string, users *repository.UserRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(utils.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			uid, err := utils.ParseSessionToken(secret, cookie.Value)
			if err != nil {
				return next(c)
			}
			u, err := users.GetAuthenticatedByID(c.Request().Context(), uid)
			if err != nil {
				// Token outlived the account; treat as anonymous.
				return next(c)
			}
			c.Set(UserKey, &u)
			c.Set(UserIDKey, u.ID)
			return next(c)
		}
	}
}

// RequireAuth rejects requests that carry no restored session with 401.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
		}
		return next(c)
	}
}

// CurrentUser returns the restored session user, or nil for anonymous
// requests.
func CurrentUser(c echo.Context) *model.AuthenticatedUser {
	if u, ok := c.Get(UserKey).(*model.AuthenticatedUser); ok {
		return u
	}
	return nil
}
