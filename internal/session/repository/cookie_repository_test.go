package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-web/internal/session/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *domain.Session {
	return &domain.Session{
		Token: "opaque-token-123",
		User:  &domain.User{ID: 1, Name: "Rafi", Email: "rafi@example.com", Role: "admin"},
	}
}

// requestWithCookies simulates a browser sending back whatever the last
// response set.
func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
		}
	}
	return req
}

func TestSetThenReadRoundtrip(t *testing.T) {
	repo := NewCookieSessionRepository(7*24*time.Hour, false, zerolog.Nop())

	rec := httptest.NewRecorder()
	repo.Set(rec, testSession())

	got, ok := repo.Read(requestWithCookies(t, rec))
	require.True(t, ok)
	assert.Equal(t, testSession(), got)
}

func TestSetCookieAttributes(t *testing.T) {
	repo := NewCookieSessionRepository(7*24*time.Hour, true, zerolog.Nop())

	rec := httptest.NewRecorder()
	repo.Set(rec, testSession())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.True(t, c.HttpOnly, "%s must be http-only", c.Name)
		assert.True(t, c.Secure, "%s must be secure", c.Name)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite, c.Name)
		assert.Equal(t, "/", c.Path, c.Name)
		assert.Equal(t, int(7*24*time.Hour/time.Second), c.MaxAge, c.Name)
	}
	assert.Equal(t, TokenCookieName, cookies[0].Name)
	assert.Equal(t, UserCookieName, cookies[1].Name)
}

func TestReadAfterClearIsAbsent(t *testing.T) {
	repo := NewCookieSessionRepository(time.Hour, false, zerolog.Nop())

	rec := httptest.NewRecorder()
	repo.Set(rec, testSession())
	repo.Clear(rec)

	// Clear must expire both cookies so the browser drops them.
	expired := map[string]bool{}
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			expired[c.Name] = true
		}
	}
	assert.True(t, expired[TokenCookieName])
	assert.True(t, expired[UserCookieName])

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := repo.Read(req)
	assert.False(t, ok)
}

func TestReadRequiresBothCookies(t *testing.T) {
	repo := NewCookieSessionRepository(time.Hour, false, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "tok"})

	_, ok := repo.Read(req)
	assert.False(t, ok, "token without user_data is not a session")
}

func TestReadMalformedUserDataIsAbsentNotError(t *testing.T) {
	repo := NewCookieSessionRepository(time.Hour, false, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "tok"})
	req.AddCookie(&http.Cookie{Name: UserCookieName, Value: "%7Bnot-json"})

	sess, ok := repo.Read(req)
	assert.False(t, ok)
	assert.Nil(t, sess)
}

func TestMemoryRepositoryRoundtrip(t *testing.T) {
	repo := NewMemorySessionRepository()

	_, ok := repo.Read(nil)
	assert.False(t, ok)

	repo.Set(nil, testSession())
	got, ok := repo.Read(nil)
	require.True(t, ok)
	assert.Equal(t, testSession().Token, got.Token)

	repo.Clear(nil)
	_, ok = repo.Read(nil)
	assert.False(t, ok)
}
