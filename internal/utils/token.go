package utils // package utils provides helpers for session token creation and verification

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "token"

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed claims or an expired token. Callers treat all of
// these as an anonymous request.
var ErrInvalidToken = errors.New("invalid session token")

// NewSessionToken builds and signs an HS256 JWT for a user. It takes the
// signing secret, the user ID and a TTL in hours, and returns the token
// string with its expiration time. The claims follow the usual layout:
// subject (sub), expiration (exp) and issued at (iat). The token proves a
// prior successful authentication and is verifiable without a database
// round trip.
func NewSessionToken(secret string, userID uint64, ttlHours int) (string, time.Time, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseSessionToken verifies signature and expiration and returns the user
// id from the subject claim. Only HMAC-signed tokens are accepted; anything
// else is rejected with ErrInvalidToken.
func ParseSessionToken(secret, raw string) (uint64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, ErrInvalidToken
	}
	return uint64(sub), nil
}

// SetSessionCookie attaches the signed token as an HTTP-only cookie. Secure
// is enabled outside dev so the cookie only travels over TLS in production.
func SetSessionCookie(w http.ResponseWriter, token string, exp time.Time, env string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   env != "dev",
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter, env string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   env != "dev",
		SameSite: http.SameSiteLaxMode,
	})
}
