package dto

import (
	"mime/multipart"

	"portfolio-web/internal/post/domain"
	"portfolio-web/pkg/pagination"
)

// CreatePostRequest is the multipart payload for creating a post: a
// JSON-encoded "data" field plus an optional binary thumbnail.
type CreatePostRequest struct {
	Data      string                `form:"data" binding:"required"`
	Thumbnail *multipart.FileHeader `form:"thumbnail"`
}

// PostInput is the JSON carried in the "data" field. Tags must be
// non-empty at creation time.
type PostInput struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Tags       []string `json:"tags" validate:"required,min=1"`
	IsFeatured bool     `json:"isFeatured"`
}

type ListResponse struct {
	Data []*domain.Post  `json:"data"`
	Meta pagination.Meta `json:"meta"`
}
