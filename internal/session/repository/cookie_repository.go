package repository

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"portfolio-web/internal/session/domain"

	"github.com/rs/zerolog"
)

const (
	TokenCookieName = "auth_token"
	UserCookieName  = "user_data"
)

// cookieSessionRepository keeps the session in two HTTP-only cookies: the
// opaque bearer token and the JSON-serialized user profile.
type cookieSessionRepository struct {
	maxAge time.Duration
	secure bool
	log    zerolog.Logger
}

func NewCookieSessionRepository(maxAge time.Duration, secure bool, log zerolog.Logger) SessionRepository {
	return &cookieSessionRepository{
		maxAge: maxAge,
		secure: secure,
		log:    log.With().Str("component", "session").Logger(),
	}
}

func (c *cookieSessionRepository) Set(w http.ResponseWriter, sess *domain.Session) {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		// Neither cookie is written; a half-set session must not exist.
		c.log.Error().Err(err).Msg("marshaling user for session cookie")
		return
	}

	maxAge := int(c.maxAge.Seconds())
	http.SetCookie(w, c.cookie(TokenCookieName, url.QueryEscape(sess.Token), maxAge))
	// Cookie values cannot carry raw JSON, so the user payload is URL-escaped.
	http.SetCookie(w, c.cookie(UserCookieName, url.QueryEscape(string(userJSON)), maxAge))
}

func (c *cookieSessionRepository) Clear(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie(TokenCookieName, "", -1))
	http.SetCookie(w, c.cookie(UserCookieName, "", -1))
}

func (c *cookieSessionRepository) Read(r *http.Request) (*domain.Session, bool) {
	tokenCookie, err := r.Cookie(TokenCookieName)
	if err != nil {
		return nil, false
	}
	userCookie, err := r.Cookie(UserCookieName)
	if err != nil {
		return nil, false
	}

	token, err := url.QueryUnescape(tokenCookie.Value)
	if err != nil || token == "" {
		return nil, false
	}

	userJSON, err := url.QueryUnescape(userCookie.Value)
	if err != nil {
		c.log.Warn().Err(err).Msg("undecodable user_data cookie, treating session as absent")
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		c.log.Warn().Err(err).Msg("malformed user_data cookie, treating session as absent")
		return nil, false
	}

	return &domain.Session{Token: token, User: &user}, true
}

func (c *cookieSessionRepository) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
