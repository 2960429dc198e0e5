package delivery

import (
	"net/http"
	"strconv"

	authdelivery "portfolio-web/internal/auth/delivery"
	"portfolio-web/internal/project/domain"
	"portfolio-web/internal/project/dto"
	"portfolio-web/internal/project/usecase"
	"portfolio-web/internal/respond"
	"portfolio-web/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Projects render three to a page on the dashboard table.
const pageSize = 3

// ProjectHandler handles project HTTP requests.
type ProjectHandler struct {
	projectUsecase usecase.ProjectUsecase
	log            zerolog.Logger
}

func NewProjectHandler(projectUsecase usecase.ProjectUsecase, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUsecase: projectUsecase,
		log:            log,
	}
}

// ListPublic returns the full public collection.
// GET /api/projects
func (h *ProjectHandler) ListPublic(c *gin.Context) {
	projects, err := h.projectUsecase.List(c.Request.Context())
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": projects})
}

// GetByID returns a single project.
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := h.projectUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": project})
}

// ListDashboard returns one page of the collection for the dashboard
// table, sliced client-style from the full fetch.
// GET /api/dashboard/projects?page=N
func (h *ProjectHandler) ListDashboard(c *gin.Context) {
	projects, err := h.projectUsecase.List(c.Request.Context())
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	p := pagination.New[*domain.Project](pageSize)
	p.SetItems(projects)
	p.Goto(page)

	c.JSON(http.StatusOK, dto.ListResponse{Data: p.Page(), Meta: p.Meta()})
}

// Create proxies a new project to the upstream API.
// POST /api/dashboard/projects (multipart)
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.MutateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: missing data field."})
		return
	}

	body, err := h.projectUsecase.Create(c.Request.Context(), authdelivery.CurrentSession(c), submissionID(c), &req)
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, body)
}

// Update edits a project in place.
// PATCH /api/dashboard/projects/:id (multipart, thumbnail optional)
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req dto.MutateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: missing data field."})
		return
	}

	body, err := h.projectUsecase.Update(c.Request.Context(), authdelivery.CurrentSession(c), submissionID(c), id, &req)
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// Delete removes a project by numeric id.
// DELETE /api/dashboard/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	if err := h.projectUsecase.Delete(c.Request.Context(), authdelivery.CurrentSession(c), id); err != nil {
		respond.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
}

// submissionID threads the client's idempotency key through to the action,
// minting one when the client did not send any.
func submissionID(c *gin.Context) string {
	if key := c.GetHeader("X-Submission-Id"); key != "" {
		return key
	}
	return uuid.NewString()
}
