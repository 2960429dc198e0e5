package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"portfolio-web/internal/post/domain"
	"portfolio-web/internal/post/dto"
	sessiondomain "portfolio-web/internal/session/domain"
	"portfolio-web/internal/validate"
	"portfolio-web/pkg/revalidate"
	"portfolio-web/pkg/upstream"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// postUsecase implements PostUsecase with the same ordering guarantees as
// the project actions: validation before network, invalidation only after
// confirmed success.
type postUsecase struct {
	api         *upstream.Client
	cache       revalidate.Store
	validate    *validator.Validate
	submissions singleflight.Group
	log         zerolog.Logger
}

func NewPostUsecase(api *upstream.Client, cache revalidate.Store, log zerolog.Logger) PostUsecase {
	return &postUsecase{
		api:      api,
		cache:    cache,
		validate: validate.New(),
		log:      log.With().Str("component", "post").Logger(),
	}
}

func (u *postUsecase) List(ctx context.Context) ([]*domain.Post, error) {
	if cached, ok := u.cache.Get(revalidate.TagPosts); ok {
		if posts, ok := cached.([]*domain.Post); ok {
			return posts, nil
		}
	}

	res, err := u.api.GetJSON(ctx, "/post")
	if err != nil {
		return nil, err
	}
	if res.Status != http.StatusOK {
		u.log.Error().Int("status", res.Status).Str("body", res.Raw).Msg("fetching posts failed")
		return nil, &upstream.UpstreamError{Status: res.Status, Body: res.Raw, Message: "Failed to load posts"}
	}

	posts, err := upstream.DecodeList[*domain.Post](res)
	if err != nil {
		return nil, err
	}

	u.cache.Put(revalidate.TagPosts, posts)
	return posts, nil
}

func (u *postUsecase) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	res, err := u.api.GetJSON(ctx, "/post/slug/"+slug)
	if err != nil {
		return nil, err
	}
	if res.Status != http.StatusOK {
		return nil, &upstream.UpstreamError{Status: res.Status, Body: res.Raw, Message: "Post not found"}
	}
	return upstream.DecodeRecord[domain.Post](res)
}

func (u *postUsecase) Create(ctx context.Context, sess *sessiondomain.Session, submissionID string, req *dto.CreatePostRequest) (map[string]any, error) {
	if sess == nil || sess.Token == "" {
		return nil, upstream.ErrNotAuthenticated
	}

	var input dto.PostInput
	if err := json.Unmarshal([]byte(req.Data), &input); err != nil {
		return nil, &upstream.InvalidRequestError{Field: "data", Reason: "must be valid JSON"}
	}
	if err := u.validate.Struct(&input); err != nil {
		return nil, validate.First(err)
	}

	return u.submit(submissionID, func() (map[string]any, error) {
		res, err := u.api.SendMultipart(ctx, http.MethodPost, "/post", sess.Token, req.Data, req.Thumbnail)
		if err != nil {
			return nil, err
		}

		record := upstream.UnwrapEnvelope(res.Body)
		if res.Status != http.StatusCreated || record == nil || record["id"] == nil {
			u.log.Error().Int("status", res.Status).Str("body", res.Raw).Msg("blog creation failed")
			msg := res.Message()
			if msg == "" {
				msg = "Blog creation failed"
			}
			return nil, &upstream.UpstreamError{Status: res.Status, Body: res.Raw, Message: msg}
		}

		u.cache.Invalidate(revalidate.TagPosts, revalidate.PathDashboard)
		return res.Body, nil
	})
}

func (u *postUsecase) Delete(ctx context.Context, sess *sessiondomain.Session, id int) error {
	if sess == nil || sess.Token == "" {
		return upstream.ErrNotAuthenticated
	}

	res, err := u.api.Delete(ctx, fmt.Sprintf("/post/%d", id), sess.Token)
	if err != nil {
		return err
	}
	if res.Status < http.StatusOK || res.Status >= http.StatusMultipleChoices {
		u.log.Error().Int("status", res.Status).Str("body", res.Raw).Msg("post deletion failed")
		return &upstream.UpstreamError{Status: res.Status, Body: res.Raw, Message: "Failed to delete post"}
	}

	u.cache.Invalidate(revalidate.TagPosts, revalidate.PathDashboardBlogs, revalidate.PathBlogs)
	return nil
}

// submit collapses duplicate concurrent submissions sharing an idempotency
// key into a single upstream call.
func (u *postUsecase) submit(submissionID string, fn func() (map[string]any, error)) (map[string]any, error) {
	v, err, _ := u.submissions.Do(submissionID, func() (any, error) {
		return fn()
	})
	if err != nil {
		return nil, err
	}
	body, _ := v.(map[string]any)
	return body, nil
}
