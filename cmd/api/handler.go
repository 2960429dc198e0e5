package api

import (
	"time"

	authusecase "portfolio-web/internal/auth/usecase"
	"portfolio-web/internal/auth/events"
	postusecase "portfolio-web/internal/post/usecase"
	projectusecase "portfolio-web/internal/project/usecase"
	"portfolio-web/internal/session/repository"
	"portfolio-web/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler bundles the wired use cases and builds the HTTP engine.
type Handler struct {
	cfg            *config.Config
	log            zerolog.Logger
	sessions       repository.SessionRepository
	authUsecase    authusecase.AuthUsecase
	projectUsecase projectusecase.ProjectUsecase
	postUsecase    postusecase.PostUsecase
	broadcaster    *events.Broadcaster
}

func NewHandler(
	cfg *config.Config,
	log zerolog.Logger,
	sessions repository.SessionRepository,
	authUc authusecase.AuthUsecase,
	projectUc projectusecase.ProjectUsecase,
	postUc postusecase.PostUsecase,
	broadcaster *events.Broadcaster,
) *Handler {
	return &Handler{
		cfg:            cfg,
		log:            log,
		sessions:       sessions,
		authUsecase:    authUc,
		projectUsecase: projectUc,
		postUsecase:    postUc,
		broadcaster:    broadcaster,
	}
}

// Engine assembles the gin engine with middleware and routes.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(h.log))
	r.Use(corsMiddleware())

	SetupRoutes(r, h)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(started)).
			Msg("request")
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Cache-Control, X-Requested-With, X-Submission-Id")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
