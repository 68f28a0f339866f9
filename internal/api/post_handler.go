package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/config"
	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/service"
)

// PostHandler handles post endpoints
type PostHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// List handles GET /v1/posts
func (h *PostHandler) List(c *gin.Context) {
	filter := &models.PostFilter{
		ListParams: parseListParams(c, h.cfg.Pagination.DefaultLimit, h.cfg.Pagination.MaxLimit),
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		CategoryID: c.Query("categoryId"),
		TagID:      c.Query("tagId"),
	}

	posts, meta, err := h.services.Post.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondList(c, posts, meta)
}

// Get handles GET /v1/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.services.Post.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Create handles POST /v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	var in models.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.services.Post.Create(c.Request.Context(), identityFrom(c), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Update handles PUT /v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var in models.PostUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.services.Post.Update(c.Request.Context(), identityFrom(c), c.Param("id"), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /v1/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.services.Post.Delete(c.Request.Context(), identityFrom(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
