package respond

import (
	"errors"
	"fmt"
	"net/http"

	"portfolio-web/pkg/upstream"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Error maps the action error taxonomy onto a uniform {error, details?}
// body. Every failure class is recovered here; nothing propagates to the
// renderer as an unhandled panic.
func Error(c *gin.Context, log zerolog.Logger, err error) {
	var invalidErr *upstream.InvalidRequestError
	var upstreamErr *upstream.UpstreamError
	var networkErr *upstream.NetworkError

	switch {
	case errors.Is(err, upstream.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.As(err, &invalidErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidErr.Error()})

	case errors.As(err, &upstreamErr):
		log.Error().
			Int("status", upstreamErr.Status).
			Str("body", upstreamErr.Body).
			Msg("upstream request failed")
		body := gin.H{"error": upstreamErr.Error()}
		if upstreamErr.Body != "" {
			body["details"] = fmt.Sprintf("%d: %s", upstreamErr.Status, upstreamErr.Body)
		}
		c.JSON(http.StatusBadGateway, body)

	case errors.As(err, &networkErr):
		log.Error().Err(networkErr.Err).Msg("network error calling upstream")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Network error occurred"})

	default:
		log.Error().Err(err).Msg("unclassified action error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
