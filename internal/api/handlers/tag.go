package handlers

import (
	"net/http"

	"component-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TagHandler handles HTTP requests for tag operations
type TagHandler struct {
	tagService *service.TagService
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// ListTags handles GET /tags
// @Summary List all tags
// @Description Get all tags with pagination support. Public endpoint.
// @Tags tags
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(100)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.TagListResponse "Successfully retrieved tags"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	limit, offset, err := parsePagination(c, 100)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.tagService.GetAll(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTag handles GET /tags/:id
// @Summary Get tag by ID
// @Description Get a specific tag by its UUID. Public endpoint.
// @Tags tags
// @Accept json
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Success 200 {object} service.TagResponse "Successfully retrieved tag"
// @Failure 400 {object} ErrorResponse "Invalid tag ID"
// @Failure 404 {object} ErrorResponse "Tag not found"
// @Router /tags/{id} [get]
func (h *TagHandler) GetTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	tag, err := h.tagService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// CreateTag handles POST /tags
// @Summary Create a new tag
// @Description Create a new tag. Tag names are unique.
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body service.CreateTagRequest true "Tag data"
// @Success 201 {object} service.TagResponse "Successfully created tag"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Tag name already exists"
// @Security BearerAuth
// @Router /tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req service.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// DeleteTag handles DELETE /tags/:id
// @Summary Delete tag
// @Description Delete a tag and its component associations
// @Tags tags
// @Accept json
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Success 204 "Successfully deleted tag"
// @Failure 400 {object} ErrorResponse "Invalid tag ID"
// @Failure 404 {object} ErrorResponse "Tag not found"
// @Security BearerAuth
// @Router /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	if err := h.tagService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
