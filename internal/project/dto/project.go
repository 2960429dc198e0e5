package dto

import (
	"mime/multipart"

	"portfolio-web/internal/project/domain"
	"portfolio-web/pkg/pagination"
)

// MutateProjectRequest is the multipart payload for create and update: a
// JSON-encoded "data" field plus a binary thumbnail. The thumbnail is
// required on create and optional on update.
type MutateProjectRequest struct {
	Data      string                `form:"data" binding:"required"`
	Thumbnail *multipart.FileHeader `form:"thumbnail"`
}

// ProjectInput is the JSON carried in the "data" field. tech_used and
// key_features must be non-empty at creation time; later edits may shrink
// them.
type ProjectInput struct {
	ProjectTitle string   `json:"project_title" validate:"required"`
	Desc         string   `json:"desc" validate:"required"`
	TechUsed     []string `json:"tech_used" validate:"required,min=1"`
	KeyFeatures  []string `json:"key_features" validate:"required,min=1"`
	GitURL       string   `json:"git_url"`
	LiveURL      string   `json:"live_url"`
}

type ListResponse struct {
	Data []*domain.Project `json:"data"`
	Meta pagination.Meta   `json:"meta"`
}
