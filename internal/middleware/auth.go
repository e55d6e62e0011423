package middleware

import (
	"net/http"
	"strings"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const sessionKey = "session"

type Authenticator interface {
	Authenticate(token string) (domain.Session, error)
}

// Auth rejects requests without a valid bearer token and stores the caller's
// session for handlers.
func Auth(authenticator Authenticator) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		session, err := authenticator.Authenticate(strings.TrimSpace(token))
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the session stored by Auth.
func SessionFrom(c *ginext.Context) (domain.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}
	session, ok := v.(domain.Session)
	return session, ok
}

// WithSession stores session the way Auth does. Used by handler tests.
func WithSession(c *ginext.Context, session domain.Session) {
	c.Set(sessionKey, session)
}
