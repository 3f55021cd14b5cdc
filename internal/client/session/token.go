package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry peeks at the expiry claim of the current session token, for
// display purposes only. The token is not verified and auth decisions never
// depend on this value; the backend stays the sole authority. Returns false
// when the token is absent, not a JWT, or carries no expiry.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	return tokenExpiry(m.State().Token)
}

func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
