package usecase

import (
	"context"
	"encoding/json"
	"net/http"

	authdto "portfolio-web/internal/auth/dto"
	sessiondomain "portfolio-web/internal/session/domain"
	"portfolio-web/pkg/upstream"

	"github.com/rs/zerolog"
)

// authUsecase implements AuthUsecase against the external portfolio API.
// The token the upstream issues is treated as opaque; it is stored as-is
// and attached as a bearer token on later mutations.
type authUsecase struct {
	api *upstream.Client
	log zerolog.Logger
}

func NewAuthUsecase(api *upstream.Client, log zerolog.Logger) AuthUsecase {
	return &authUsecase{
		api: api,
		log: log.With().Str("component", "auth").Logger(),
	}
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*sessiondomain.Session, map[string]any, error) {
	res, err := u.api.PostJSON(ctx, "/auth/login", req)
	if err != nil {
		u.log.Error().Err(err).Msg("login call failed")
		return nil, nil, err
	}

	if res.Status != http.StatusOK {
		u.log.Error().Int("status", res.Status).Str("body", res.Raw).Msg("login rejected by upstream")
		return nil, nil, &upstream.UpstreamError{Status: res.Status, Body: res.Raw, Message: "Login failed"}
	}

	var payload struct {
		Token string              `json:"token"`
		User  *sessiondomain.User `json:"user"`
	}
	if err := json.Unmarshal([]byte(res.Raw), &payload); err != nil || payload.Token == "" || payload.User == nil {
		u.log.Error().Int("status", res.Status).Str("body", res.Raw).Msg("login response missing token or user")
		return nil, nil, &upstream.UpstreamError{Status: res.Status, Body: res.Raw, Message: "Login failed"}
	}

	return &sessiondomain.Session{Token: payload.Token, User: payload.User}, res.Body, nil
}
