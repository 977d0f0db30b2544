// Package auth implements the dashboard's access gate: a static credential
// pair and an opaque session marker cookie. Two states exist — anonymous and
// authenticated — and credential submission is the only transition.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/contactdesk/backend/internal/domain/shared"
)

// markerValue is the fixed opaque cookie value. Presence of any non-empty
// value is the authentication signal; the marker is not a verifiable token,
// so this is not a security boundary against a client that sets its own
// cookies.
const markerValue = "1"

// SessionGate validates the configured credential pair and manages the
// session marker cookie.
type SessionGate struct {
	username   string
	password   string
	cookieName string
}

// NewSessionGate creates a gate for the given credential pair and cookie name.
func NewSessionGate(username, password, cookieName string) *SessionGate {
	return &SessionGate{
		username:   username,
		password:   password,
		cookieName: cookieName,
	}
}

// Authenticate compares the submitted pair against the configured one in
// constant time. A mismatch reports a generic authorization failure that
// does not distinguish wrong username from wrong password.
func (g *SessionGate) Authenticate(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !userOK || !passOK {
		return shared.ErrInvalidCredentials
	}
	return nil
}

// IssueCookie sets the session marker: HttpOnly, SameSite=Lax, whole-app
// path, session lifetime (no explicit expiry).
func (g *SessionGate) IssueCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(g.cookieName, markerValue, 0, "/", "", false, true)
}

// ClearCookie unconditionally clears the session marker.
func (g *SessionGate) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(g.cookieName, "", -1, "/", "", false, true)
}

// IsAuthenticated reports whether the session marker cookie is present and
// non-empty.
func (g *SessionGate) IsAuthenticated(r *http.Request) bool {
	cookie, err := r.Cookie(g.cookieName)
	return err == nil && cookie.Value != ""
}

// PageGuard gates page navigation: anonymous requests outside /login are
// redirected to /login, and an authenticated visit to /login is redirected
// to /dashboard. API routes are registered outside this guard.
func (g *SessionGate) PageGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		authed := g.IsAuthenticated(c.Request)
		onLogin := strings.HasPrefix(c.Request.URL.Path, "/login")

		if !authed && !onLogin {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if authed && onLogin {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
