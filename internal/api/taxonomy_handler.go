package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/config"
	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/service"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "category").Logger(),
	}
}

// List handles GET /v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	filter := &models.TaxonomyFilter{
		ListParams: parseListParams(c, h.cfg.Pagination.DefaultLimit, h.cfg.Pagination.MaxLimit),
		Search:     c.Query("search"),
	}

	categories, meta, err := h.services.Category.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondList(c, categories, meta)
}

// Get handles GET /v1/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.services.Category.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Create handles POST /v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var in models.TaxonomyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category, err := h.services.Category.Create(c.Request.Context(), identityFrom(c), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// Update handles PUT /v1/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var in models.TaxonomyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category, err := h.services.Category.Update(c.Request.Context(), identityFrom(c), c.Param("id"), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /v1/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.services.Category.Delete(c.Request.Context(), identityFrom(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// TagHandler handles tag endpoints
type TagHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *TagHandler {
	return &TagHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "tag").Logger(),
	}
}

// List handles GET /v1/tags
func (h *TagHandler) List(c *gin.Context) {
	filter := &models.TaxonomyFilter{
		ListParams: parseListParams(c, h.cfg.Pagination.DefaultLimit, h.cfg.Pagination.MaxLimit),
		Search:     c.Query("search"),
	}

	tags, meta, err := h.services.Tag.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondList(c, tags, meta)
}

// Get handles GET /v1/tags/:id
func (h *TagHandler) Get(c *gin.Context) {
	tag, err := h.services.Tag.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// Create handles POST /v1/tags
func (h *TagHandler) Create(c *gin.Context) {
	var in models.TaxonomyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tag, err := h.services.Tag.Create(c.Request.Context(), identityFrom(c), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// Update handles PUT /v1/tags/:id
func (h *TagHandler) Update(c *gin.Context) {
	var in models.TaxonomyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tag, err := h.services.Tag.Update(c.Request.Context(), identityFrom(c), c.Param("id"), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// Delete handles DELETE /v1/tags/:id
func (h *TagHandler) Delete(c *gin.Context) {
	if err := h.services.Tag.Delete(c.Request.Context(), identityFrom(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "tag deleted"})
}
