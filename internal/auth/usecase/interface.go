package usecase

import (
	"context"

	authdto "portfolio-web/internal/auth/dto"
	sessiondomain "portfolio-web/internal/session/domain"
)

// AuthUsecase defines the auth use cases backed by the external API.
type AuthUsecase interface {
	// Login exchanges credentials for a session at the upstream API. It
	// returns the session to persist plus the raw upstream body, which is
	// handed back to the caller unchanged.
	Login(ctx context.Context, req *authdto.LoginRequest) (*sessiondomain.Session, map[string]any, error)
}
