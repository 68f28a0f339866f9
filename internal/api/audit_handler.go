package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/config"
	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/service"
)

// AuditHandler handles the read-only audit log endpoint
type AuditHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *AuditHandler {
	return &AuditHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "audit").Logger(),
	}
}

// List handles GET /v1/audit
func (h *AuditHandler) List(c *gin.Context) {
	filter := &models.AuditFilter{
		ListParams: parseListParams(c, h.cfg.Pagination.DefaultLimit, h.cfg.Pagination.MaxLimit),
		Entity:     c.Query("entity"),
		Action:     c.Query("action"),
		UserID:     c.Query("userId"),
	}

	entries, meta, err := h.services.Audit.List(c.Request.Context(), identityFrom(c), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondList(c, entries, meta)
}
