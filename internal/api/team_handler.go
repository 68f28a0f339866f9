package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/config"
	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/service"
)

// TeamHandler handles team member endpoints
type TeamHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *TeamHandler {
	return &TeamHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "team").Logger(),
	}
}

// List handles GET /v1/team. Hidden members are only returned when
// includeHidden=true is requested by an authenticated caller.
func (h *TeamHandler) List(c *gin.Context) {
	includeHidden := c.Query("includeHidden") == "true" && identityFrom(c) != nil

	filter := &models.TeamFilter{
		ListParams:    parseListParams(c, h.cfg.Pagination.DefaultLimit, h.cfg.Pagination.MaxLimit),
		Search:        c.Query("search"),
		IncludeHidden: includeHidden,
	}

	members, meta, err := h.services.Team.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondList(c, members, meta)
}

// Get handles GET /v1/team/:id
func (h *TeamHandler) Get(c *gin.Context) {
	member, err := h.services.Team.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// Create handles POST /v1/team
func (h *TeamHandler) Create(c *gin.Context) {
	var in models.TeamMemberInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	member, err := h.services.Team.Create(c.Request.Context(), identityFrom(c), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// Update handles PUT /v1/team/:id
func (h *TeamHandler) Update(c *gin.Context) {
	var in models.TeamMemberUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	member, err := h.services.Team.Update(c.Request.Context(), identityFrom(c), c.Param("id"), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// Delete handles DELETE /v1/team/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.services.Team.Delete(c.Request.Context(), identityFrom(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "team member deleted"})
}
