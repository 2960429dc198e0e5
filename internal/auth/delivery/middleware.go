package delivery

import (
	"net/http"

	"portfolio-web/internal/session/domain"
	"portfolio-web/internal/session/repository"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// SessionMiddleware resolves the cookie session once per request and makes
// it available to handlers via CurrentSession. A malformed or absent
// session simply resolves to none.
func SessionMiddleware(sessions repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := sessions.Read(c.Request); ok {
			c.Set(sessionContextKey, sess)
		}
		c.Next()
	}
}

// RequireSession aborts with 401 when no session was resolved. Dashboard
// route groups mount it after SessionMiddleware.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the request's session, or nil when the caller is
// not authenticated.
func CurrentSession(c *gin.Context) *domain.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if sess, ok := v.(*domain.Session); ok {
			return sess
		}
	}
	return nil
}
