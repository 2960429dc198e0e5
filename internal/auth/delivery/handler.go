package delivery

import (
	"net/http"

	authdto "portfolio-web/internal/auth/dto"
	"portfolio-web/internal/auth/events"
	"portfolio-web/internal/auth/usecase"
	"portfolio-web/internal/respond"
	"portfolio-web/internal/session/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler owns the session endpoints: login, logout and the status
// check that bridges server-held cookies to client-held UI state.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	sessions    repository.SessionRepository
	broadcaster *events.Broadcaster
	log         zerolog.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, sessions repository.SessionRepository, broadcaster *events.Broadcaster, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		sessions:    sessions,
		broadcaster: broadcaster,
		log:         log,
	}
}

// Login authenticates against the upstream API and establishes the cookie
// session.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, body, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}

	h.sessions.Set(c.Writer, sess)
	h.broadcaster.Publish(events.Event{Authenticated: true, User: sess.User})
	c.JSON(http.StatusOK, body)
}

// Logout clears both session cookies. The upstream is not involved.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c.Writer)
	h.broadcaster.Publish(events.Event{Authenticated: false})
	c.JSON(http.StatusOK, authdto.LogoutResponse{Success: true})
}

// Check reports whether the caller holds a valid session. Client-rendered
// code cannot read the HTTP-only cookies, so this endpoint is its only
// window into auth state. Idempotent, no side effects.
// GET /api/auth/check
func (h *AuthHandler) Check(c *gin.Context) {
	sess := CurrentSession(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, authdto.CheckResponse{Authenticated: false})
		return
	}
	c.JSON(http.StatusOK, authdto.CheckResponse{Authenticated: true, User: sess.User})
}
