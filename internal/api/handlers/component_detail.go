package handlers

import (
	"net/http"

	"component-catalog-backend/internal/repository"
	"component-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DetailHandler serves the CRUD sub-resource for one component-owned detail
// table. All detail tables share the same route shape under
// /components/:id/<resource>, so one generic handler covers them.
type DetailHandler[T any, PT repository.Detail[T]] struct {
	detailService *service.DetailService[T, PT]
	readOnly      bool
}

// NewDetailHandler creates a detail handler for one detail model
func NewDetailHandler[T any, PT repository.Detail[T]](detailService *service.DetailService[T, PT]) *DetailHandler[T, PT] {
	return &DetailHandler[T, PT]{detailService: detailService}
}

// NewReadOnlyDetailHandler creates a detail handler whose rows are written
// by the system rather than by clients (version history)
func NewReadOnlyDetailHandler[T any, PT repository.Detail[T]](detailService *service.DetailService[T, PT]) *DetailHandler[T, PT] {
	return &DetailHandler[T, PT]{detailService: detailService, readOnly: true}
}

// ReadOnly reports whether write routes should be registered for this
// detail resource
func (h *DetailHandler[T, PT]) ReadOnly() bool {
	return h.readOnly
}

// List handles GET /components/:id/<resource>
func (h *DetailHandler[T, PT]) List(c *gin.Context) {
	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}

	limit, offset, err := parsePagination(c, 100)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.detailService.ListByComponent(componentID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Create handles POST /components/:id/<resource>
func (h *DetailHandler[T, PT]) Create(c *gin.Context) {
	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}

	var row T
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.detailService.Create(componentID, PT(&row))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Get handles GET /components/:id/<resource>/:detailId
func (h *DetailHandler[T, PT]) Get(c *gin.Context) {
	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}
	detailID, err := uuid.Parse(c.Param("detailId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid detail ID"})
		return
	}

	row, err := h.detailService.GetByID(componentID, detailID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

// Update handles PUT /components/:id/<resource>/:detailId
func (h *DetailHandler[T, PT]) Update(c *gin.Context) {
	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}
	detailID, err := uuid.Parse(c.Param("detailId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid detail ID"})
		return
	}

	var row T
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.detailService.Update(componentID, detailID, PT(&row))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /components/:id/<resource>/:detailId
func (h *DetailHandler[T, PT]) Delete(c *gin.Context) {
	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}
	detailID, err := uuid.Parse(c.Param("detailId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid detail ID"})
		return
	}

	if err := h.detailService.Delete(componentID, detailID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
