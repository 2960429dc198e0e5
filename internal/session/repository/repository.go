package repository

import (
	"net/http"

	"portfolio-web/internal/session/domain"
)

// SessionRepository owns the browser cookie jar. It is injected into every
// component that needs auth state (handlers, middleware, the status
// endpoint) rather than read ambiently, so tests can swap in the in-memory
// implementation.
type SessionRepository interface {
	// Set writes the token and user cookies together.
	Set(w http.ResponseWriter, sess *domain.Session)

	// Clear deletes both cookies.
	Clear(w http.ResponseWriter)

	// Read returns the session when both cookies are present and the user
	// payload parses. Absence is a normal state, not an error.
	Read(r *http.Request) (*domain.Session, bool)
}
