package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"portfolio-web/internal/project/domain"
	"portfolio-web/internal/project/dto"
	sessiondomain "portfolio-web/internal/session/domain"
	"portfolio-web/internal/validate"
	"portfolio-web/pkg/revalidate"
	"portfolio-web/pkg/upstream"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// projectUsecase implements ProjectUsecase. Every mutation follows the
// same order: session check, local validation, upstream call, success
// check, cache invalidation. Invalidation never happens before the
// upstream confirms success.
type projectUsecase struct {
	api         *upstream.Client
	cache       revalidate.Store
	validate    *validator.Validate
	submissions singleflight.Group
	log         zerolog.Logger
}

func NewProjectUsecase(api *upstream.Client, cache revalidate.Store, log zerolog.Logger) ProjectUsecase {
	return &projectUsecase{
		api:      api,
		cache:    cache,
		validate: validate.New(),
		log:      log.With().Str("component", "project").Logger(),
	}
}

func (u *projectUsecase) List(ctx context.Context) ([]*domain.Project, error) {
	if cached, ok := u.cache.Get(revalidate.TagProjects); ok {
		if projects, ok := cached.([]*domain.Project); ok {
			return projects, nil
		}
	}

	res, err := u.api.GetJSON(ctx, "/project")
	if err != nil {
		return nil, err
	}
	if res.Status != http.StatusOK {
		u.log.Error().Int("status", res.Status).Str("body", res.Raw).Msg("fetching projects failed")
		return nil, &upstream.UpstreamError{Status: res.Status, Body: res.Raw, Message: "Failed to load projects"}
	}

	projects, err := upstream.DecodeList[*domain.Project](res)
	if err != nil {
		return nil, err
	}

	u.cache.Put(revalidate.TagProjects, projects)
	return projects, nil
}

func (u *projectUsecase) GetByID(ctx context.Context, id int) (*domain.Project, error) {
	res, err := u.api.GetJSON(ctx, fmt.Sprintf("/project/%d", id))
	if err != nil {
		return nil, err
	}
	if res.Status != http.StatusOK {
		return nil, &upstream.UpstreamError{Status: res.Status, Body: res.Raw, Message: "Project not found"}
	}
	return upstream.DecodeRecord[domain.Project](res)
}

func (u *projectUsecase) Create(ctx context.Context, sess *sessiondomain.Session, submissionID string, req *dto.MutateProjectRequest) (map[string]any, error) {
	if sess == nil || sess.Token == "" {
		return nil, upstream.ErrNotAuthenticated
	}
	if err := u.parseInput(req); err != nil {
		return nil, err
	}
	if req.Thumbnail == nil {
		return nil, &upstream.InvalidRequestError{Field: "thumbnail", Reason: "is required"}
	}

	return u.submit(submissionID, func() (map[string]any, error) {
		res, err := u.api.SendMultipart(ctx, http.MethodPost, "/project", sess.Token, req.Data, req.Thumbnail)
		if err != nil {
			return nil, err
		}

		record := upstream.UnwrapEnvelope(res.Body)
		if res.Status != http.StatusCreated || record == nil || record["id"] == nil {
			u.log.Error().Int("status", res.Status).Str("body", res.Raw).Msg("project creation failed")
			return nil, u.upstreamError(res, "Project creation failed")
		}

		u.cache.Invalidate(revalidate.TagProjects, revalidate.PathDashboard)
		return res.Body, nil
	})
}

func (u *projectUsecase) Update(ctx context.Context, sess *sessiondomain.Session, submissionID string, id int, req *dto.MutateProjectRequest) (map[string]any, error) {
	if sess == nil || sess.Token == "" {
		return nil, upstream.ErrNotAuthenticated
	}
	if err := u.parseInput(req); err != nil {
		return nil, err
	}

	return u.submit(submissionID, func() (map[string]any, error) {
		res, err := u.api.SendMultipart(ctx, http.MethodPatch, fmt.Sprintf("/project/%d", id), sess.Token, req.Data, req.Thumbnail)
		if err != nil {
			return nil, err
		}

		record := upstream.UnwrapEnvelope(res.Body)
		if res.Status != http.StatusOK || record == nil || record["id"] == nil {
			u.log.Error().Int("status", res.Status).Str("body", res.Raw).Msg("project update failed")
			return nil, u.upstreamError(res, "Project update failed")
		}

		u.cache.Invalidate(revalidate.TagProjects, revalidate.PathDashboard)
		return res.Body, nil
	})
}

func (u *projectUsecase) Delete(ctx context.Context, sess *sessiondomain.Session, id int) error {
	if sess == nil || sess.Token == "" {
		return upstream.ErrNotAuthenticated
	}

	res, err := u.api.Delete(ctx, fmt.Sprintf("/project/%d", id), sess.Token)
	if err != nil {
		return err
	}
	if res.Status < http.StatusOK || res.Status >= http.StatusMultipleChoices {
		u.log.Error().Int("status", res.Status).Str("body", res.Raw).Msg("project deletion failed")
		return u.upstreamError(res, "Failed to delete project")
	}

	u.cache.Invalidate(revalidate.TagProjects, revalidate.PathDashboardProjects, revalidate.PathProjects)
	return nil
}

// parseInput checks the structural shape of the data field locally. The
// first violation stops the action with a field-specific message.
func (u *projectUsecase) parseInput(req *dto.MutateProjectRequest) error {
	var input dto.ProjectInput
	if err := json.Unmarshal([]byte(req.Data), &input); err != nil {
		return &upstream.InvalidRequestError{Field: "data", Reason: "must be valid JSON"}
	}
	if err := u.validate.Struct(&input); err != nil {
		return validate.First(err)
	}
	return nil
}

// submit collapses duplicate concurrent submissions sharing an idempotency
// key into a single upstream call.
func (u *projectUsecase) submit(submissionID string, fn func() (map[string]any, error)) (map[string]any, error) {
	v, err, _ := u.submissions.Do(submissionID, func() (any, error) {
		return fn()
	})
	if err != nil {
		return nil, err
	}
	body, _ := v.(map[string]any)
	return body, nil
}

func (u *projectUsecase) upstreamError(res *upstream.Response, fallback string) error {
	msg := res.Message()
	if msg == "" {
		msg = fallback
	}
	return &upstream.UpstreamError{Status: res.Status, Body: res.Raw, Message: msg}
}
