package delivery

import (
	"net/http"
	"strconv"

	authdelivery "portfolio-web/internal/auth/delivery"
	"portfolio-web/internal/post/domain"
	"portfolio-web/internal/post/dto"
	"portfolio-web/internal/post/usecase"
	"portfolio-web/internal/respond"
	"portfolio-web/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Blog posts render five to a page on the dashboard table.
const pageSize = 5

// PostHandler handles blog post HTTP requests.
type PostHandler struct {
	postUsecase usecase.PostUsecase
	log         zerolog.Logger
}

func NewPostHandler(postUsecase usecase.PostUsecase, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
		log:         log,
	}
}

// ListPublic returns the full public collection.
// GET /api/posts
func (h *PostHandler) ListPublic(c *gin.Context) {
	posts, err := h.postUsecase.List(c.Request.Context())
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": posts})
}

// GetBySlug returns a single post by its public slug.
// GET /api/posts/slug/:slug
func (h *PostHandler) GetBySlug(c *gin.Context) {
	post, err := h.postUsecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": post})
}

// ListDashboard returns one page of the collection for the dashboard
// table, sliced client-style from the full fetch.
// GET /api/dashboard/blogs?page=N
func (h *PostHandler) ListDashboard(c *gin.Context) {
	posts, err := h.postUsecase.List(c.Request.Context())
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	p := pagination.New[*domain.Post](pageSize)
	p.SetItems(posts)
	p.Goto(page)

	c.JSON(http.StatusOK, dto.ListResponse{Data: p.Page(), Meta: p.Meta()})
}

// Create proxies a new post to the upstream API.
// POST /api/dashboard/blogs (multipart)
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: missing data field."})
		return
	}

	body, err := h.postUsecase.Create(c.Request.Context(), authdelivery.CurrentSession(c), submissionID(c), &req)
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, body)
}

// Delete removes a post by numeric id.
// DELETE /api/dashboard/blogs/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := h.postUsecase.Delete(c.Request.Context(), authdelivery.CurrentSession(c), id); err != nil {
		respond.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted successfully"})
}

// submissionID threads the client's idempotency key through to the action,
// minting one when the client did not send any.
func submissionID(c *gin.Context) string {
	if key := c.GetHeader("X-Submission-Id"); key != "" {
		return key
	}
	return uuid.NewString()
}
