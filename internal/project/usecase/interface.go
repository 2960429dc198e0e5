package usecase

import (
	"context"

	"portfolio-web/internal/project/domain"
	"portfolio-web/internal/project/dto"
	sessiondomain "portfolio-web/internal/session/domain"
)

// ProjectUsecase defines the project actions performed against the
// external API on behalf of the site.
type ProjectUsecase interface {
	// List returns the full project collection, served from the revalidate
	// store until a mutation invalidates it.
	List(ctx context.Context) ([]*domain.Project, error)

	GetByID(ctx context.Context, id int) (*domain.Project, error)

	// Create proxies a new project to the upstream. submissionID is a
	// per-submission idempotency key: concurrent duplicates collapse into
	// one upstream call.
	Create(ctx context.Context, sess *sessiondomain.Session, submissionID string, req *dto.MutateProjectRequest) (map[string]any, error)

	// Update edits a project in place through the same authenticated path
	// as Create, with an optional replacement thumbnail.
	Update(ctx context.Context, sess *sessiondomain.Session, submissionID string, id int, req *dto.MutateProjectRequest) (map[string]any, error)

	Delete(ctx context.Context, sess *sessiondomain.Session, id int) error
}
