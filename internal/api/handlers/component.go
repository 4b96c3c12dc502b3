package handlers

import (
	"net/http"
	"strconv"

	"component-catalog-backend/internal/auth"
	"component-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComponentHandler handles HTTP requests for component operations
type ComponentHandler struct {
	componentService *service.ComponentService
	githubService    *service.GitHubService
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService *service.ComponentService, githubService *service.GitHubService) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
		githubService:    githubService,
	}
}

// ListComponents handles GET /components
// @Summary List components
// @Description Get components with optional filtering by category, tag, archived flag and free-text search
// @Tags components
// @Accept json
// @Produce json
// @Param category_id query string false "Filter by category ID (UUID)"
// @Param tag query string false "Filter by tag name"
// @Param archived query bool false "Filter by archived flag"
// @Param q query string false "Search in name and description"
// @Param limit query int false "Number of items to return" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.ComponentListResponse "Successfully retrieved components"
// @Failure 400 {object} ErrorResponse "Invalid filter parameters"
// @Security BearerAuth
// @Router /components [get]
func (h *ComponentHandler) ListComponents(c *gin.Context) {
	var filters service.ComponentListFilters

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
		filters.CategoryID = &categoryID
	}
	if archivedStr := c.Query("archived"); archivedStr != "" {
		archived, err := strconv.ParseBool(archivedStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid archived flag"})
			return
		}
		filters.Archived = &archived
	}
	filters.Tag = c.Query("tag")
	filters.Query = c.Query("q")

	limit, offset, err := parsePagination(c, 50)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.componentService.List(filters, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetComponent handles GET /components/:id
// @Summary Get component by ID
// @Description Get a component with its category and tags
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Success 200 {object} models.Component "Successfully retrieved component"
// @Failure 400 {object} ErrorResponse "Invalid component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}

	component, err := h.componentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// CreateComponent handles POST /components
// @Summary Register a new component
// @Description Register a component in the catalog. Component names are unique. Tags listed in the request are created on demand and attached.
// @Tags components
// @Accept json
// @Produce json
// @Param component body service.CreateComponentRequest true "Component data"
// @Success 201 {object} models.Component "Successfully registered component"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Component name already exists or category reference invalid"
// @Security BearerAuth
// @Router /components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	var req service.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdBy, _ := auth.GetUsername(c)
	component, err := h.componentService.Create(&req, createdBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, component)
}

// UpdateComponent handles PUT /components/:id
// @Summary Update component
// @Description Apply a partial update to a component and append a version-history entry
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Param component body service.UpdateComponentRequest true "Updated component data"
// @Success 200 {object} models.Component "Successfully updated component"
// @Failure 400 {object} ErrorResponse "Invalid request body or component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 409 {object} ErrorResponse "Component name already exists or category reference invalid"
// @Security BearerAuth
// @Router /components/{id} [put]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}

	var req service.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changedBy, _ := auth.GetUsername(c)
	component, err := h.componentService.Update(id, &req, changedBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// DeleteComponent handles DELETE /components/:id
// @Summary Delete component
// @Description Delete a component together with all of its detail rows and tag associations
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Success 204 "Successfully deleted component"
// @Failure 400 {object} ErrorResponse "Invalid component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /components/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}

	if err := h.componentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// ArchiveComponent handles POST /components/:id/archive
// @Summary Archive component
// @Description Mark a component as archived without deleting it
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Success 204 "Successfully archived component"
// @Failure 400 {object} ErrorResponse "Invalid component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /components/{id}/archive [post]
func (h *ComponentHandler) ArchiveComponent(c *gin.Context) {
	h.setArchived(c, true)
}

// UnarchiveComponent handles POST /components/:id/unarchive
// @Summary Unarchive component
// @Description Clear a component's archived flag
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Success 204 "Successfully unarchived component"
// @Failure 400 {object} ErrorResponse "Invalid component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /components/{id}/unarchive [post]
func (h *ComponentHandler) UnarchiveComponent(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *ComponentHandler) setArchived(c *gin.Context, archived bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}

	if err := h.componentService.SetArchived(id, archived); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// AttachTag handles PUT /components/:id/tags/:tagId
// @Summary Attach tag to component
// @Description Attach an existing tag to a component. Attaching an already attached tag is a no-op.
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Param tagId path string true "Tag ID (UUID)"
// @Success 204 "Successfully attached tag"
// @Failure 400 {object} ErrorResponse "Invalid component or tag ID"
// @Failure 404 {object} ErrorResponse "Component or tag not found"
// @Security BearerAuth
// @Router /components/{id}/tags/{tagId} [put]
func (h *ComponentHandler) AttachTag(c *gin.Context) {
	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}
	tagID, err := uuid.Parse(c.Param("tagId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	if err := h.componentService.AttachTag(componentID, tagID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// DetachTag handles DELETE /components/:id/tags/:tagId
// @Summary Detach tag from component
// @Description Remove a tag association from a component
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Param tagId path string true "Tag ID (UUID)"
// @Success 204 "Successfully detached tag"
// @Failure 400 {object} ErrorResponse "Invalid component or tag ID"
// @Failure 404 {object} ErrorResponse "Tag association not found"
// @Security BearerAuth
// @Router /components/{id}/tags/{tagId} [delete]
func (h *ComponentHandler) DetachTag(c *gin.Context) {
	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}
	tagID, err := uuid.Parse(c.Param("tagId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	if err := h.componentService.DetachTag(componentID, tagID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// GetRepositoryMetadata handles GET /components/:id/repository
// @Summary Get live repository metadata
// @Description Fetch current metadata for the component's linked GitHub repository
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Success 200 {object} service.RepositoryMetadata "Successfully retrieved repository metadata"
// @Failure 400 {object} ErrorResponse "Invalid component ID or missing/unrecognized repository URL"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /components/{id}/repository [get]
func (h *ComponentHandler) GetRepositoryMetadata(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}

	component, err := h.componentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	metadata, err := h.githubService.GetRepositoryMetadata(c.Request.Context(), component.GitRepositoryURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, metadata)
}
