// Package session translates authentication outcomes into cookie state and
// mirrors the provider's live session for the presentation layer.
package session

import (
	"net/http"
	"time"

	"legato/config"
	"legato/models"
	"legato/utils"

	"github.com/gin-gonic/gin"
)

const (
	// TokenCookie holds the signed session token. HTTP-only; the route
	// guard trusts only this copy.
	TokenCookie = "legato-token"
	// RoleCookie holds the plain role string. Client-readable; a display
	// cache for the presentation layer, never an authorization input.
	RoleCookie = "legato-role"
)

// Session is the authenticated identity carried by a verified token.
type Session struct {
	UID  string
	Role models.Role
}

// Issuer writes and clears the session cookie pair. Both cookies are always
// issued and cleared together so the guard's copy and the presentation copy
// never diverge.
type Issuer struct {
	TTL    time.Duration
	Secure bool
}

// NewIssuer builds an issuer from the application configuration.
func NewIssuer() *Issuer {
	days := config.AppConfig.SessionTTLDays
	if days <= 0 {
		days = 7
	}
	return &Issuer{
		TTL:    time.Duration(days) * 24 * time.Hour,
		Secure: config.IsProduction(),
	}
}

// Issue signs a session token for uid+role and sets both cookies.
func (i *Issuer) Issue(c *gin.Context, uid string, role models.Role) error {
	token, err := utils.GenerateSessionToken(uid, string(role), i.TTL)
	if err != nil {
		return err
	}

	maxAge := int(i.TTL.Seconds())
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   i.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     RoleCookie,
		Value:    string(role),
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: false,
		Secure:   i.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires both cookies immediately.
func (i *Issuer) Clear(c *gin.Context) {
	for _, name := range []string{TokenCookie, RoleCookie} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: name == TokenCookie,
			Secure:   i.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// ReadRole parses the client-readable role cookie.
func ReadRole(r *http.Request) (models.Role, bool) {
	cookie, err := r.Cookie(RoleCookie)
	if err != nil {
		return "", false
	}
	return models.ParseRole(cookie.Value)
}

// ReadSession verifies the token cookie and returns the session it carries.
// Any missing or unparseable cookie yields nil, identical to
// "unauthenticated".
func ReadSession(r *http.Request) *Session {
	cookie, err := r.Cookie(TokenCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	uid, roleStr, err := utils.ParseSessionToken(cookie.Value)
	if err != nil {
		return nil
	}
	role, ok := models.ParseRole(roleStr)
	if !ok {
		return nil
	}
	return &Session{UID: uid, Role: role}
}
