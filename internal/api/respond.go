package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/service"
	"github.com/carewell-health/cms-api/internal/validation"
)

// respondError translates service errors to HTTP responses. Unknown
// errors are logged and reported as a generic 500 without detail.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var verrs validation.Errors
	var conflict *service.ConflictError

	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": verrs})
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": conflict.Message})
	default:
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondList writes the normalized collection envelope
func respondList(c *gin.Context, items any, meta *models.ListMeta) {
	c.JSON(http.StatusOK, gin.H{"items": items, "meta": meta})
}

// parseListParams reads page/limit query parameters, applying defaults
// and the server-side limit cap
func parseListParams(c *gin.Context, defaultLimit, maxLimit int) models.ListParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return models.ListParams{Page: page, Limit: limit}
}
