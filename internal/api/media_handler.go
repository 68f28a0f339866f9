package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/config"
	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/service"
)

// MediaHandler handles media library endpoints
type MediaHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *MediaHandler {
	return &MediaHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "media").Logger(),
	}
}

// List handles GET /v1/media
func (h *MediaHandler) List(c *gin.Context) {
	filter := &models.MediaFilter{
		ListParams: parseListParams(c, h.cfg.Pagination.DefaultMediaLimit, h.cfg.Pagination.MaxLimit),
		Search:     c.Query("search"),
		Type:       c.Query("type"),
	}

	items, meta, err := h.services.Media.List(c.Request.Context(), identityFrom(c), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondList(c, items, meta)
}

// Create handles POST /v1/media
func (h *MediaHandler) Create(c *gin.Context) {
	var in models.MediaInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	media, err := h.services.Media.Create(c.Request.Context(), identityFrom(c), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, media)
}

// BulkDelete handles DELETE /v1/media. The request body carries the ids
// to remove; rows owned by other users are skipped silently.
func (h *MediaHandler) BulkDelete(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	deleted, err := h.services.Media.BulkDelete(c.Request.Context(), identityFrom(c), req.IDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
