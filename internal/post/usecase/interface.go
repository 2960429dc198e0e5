package usecase

import (
	"context"

	"portfolio-web/internal/post/domain"
	"portfolio-web/internal/post/dto"
	sessiondomain "portfolio-web/internal/session/domain"
)

// PostUsecase defines the blog post actions performed against the external
// API on behalf of the site.
type PostUsecase interface {
	// List returns the full post collection, served from the revalidate
	// store until a mutation invalidates it.
	List(ctx context.Context) ([]*domain.Post, error)

	// GetBySlug looks a post up by its public slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)

	// Create proxies a new post to the upstream. submissionID is a
	// per-submission idempotency key: concurrent duplicates collapse into
	// one upstream call.
	Create(ctx context.Context, sess *sessiondomain.Session, submissionID string, req *dto.CreatePostRequest) (map[string]any, error)

	Delete(ctx context.Context, sess *sessiondomain.Session, id int) error
}
