package handlers

import (
	"net/http"

	"component-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamMemberHandler handles HTTP requests for team members
type TeamMemberHandler struct {
	memberService *service.TeamMemberService
	reportService *service.ReportService
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(memberService *service.TeamMemberService, reportService *service.ReportService) *TeamMemberHandler {
	return &TeamMemberHandler{
		memberService: memberService,
		reportService: reportService,
	}
}

// ListTeamMembers handles GET /team-members
// @Summary List team members
// @Description Get all team members with pagination
// @Tags team-members
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(100)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.TeamMemberListResponse "Successfully retrieved team members"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team-members [get]
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	limit, offset, err := parsePagination(c, 100)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.memberService.GetAll(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTeamMember handles GET /team-members/:id
// @Summary Get team member by ID
// @Description Get a specific team member by their UUID
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Success 200 {object} models.TeamMember "Successfully retrieved team member"
// @Failure 400 {object} ErrorResponse "Invalid team member ID"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Security BearerAuth
// @Router /team-members/{id} [get]
func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team member ID"})
		return
	}

	member, err := h.memberService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// CreateTeamMember handles POST /team-members
// @Summary Create a new team member
// @Description Create a team member. Email addresses are unique.
// @Tags team-members
// @Accept json
// @Produce json
// @Param member body service.CreateTeamMemberRequest true "Team member data"
// @Success 201 {object} models.TeamMember "Successfully created team member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /team-members [post]
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	var req service.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// UpdateTeamMember handles PUT /team-members/:id
// @Summary Update team member
// @Description Update an existing team member by ID
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Param member body service.UpdateTeamMemberRequest true "Updated team member data"
// @Success 200 {object} models.TeamMember "Successfully updated team member"
// @Failure 400 {object} ErrorResponse "Invalid request body or team member ID"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /team-members/{id} [put]
func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team member ID"})
		return
	}

	var req service.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteTeamMember handles DELETE /team-members/:id
// @Summary Delete team member
// @Description Delete a team member together with their reports, evaluations and analyses
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Success 204 "Successfully deleted team member"
// @Failure 400 {object} ErrorResponse "Invalid team member ID"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Security BearerAuth
// @Router /team-members/{id} [delete]
func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team member ID"})
		return
	}

	if err := h.memberService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// GetMemberReports handles GET /team-members/:id/reports
// @Summary List a member's reports
// @Description Get a team member's weekly reports, newest first
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Param limit query int false "Number of items to return" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.ReportListResponse "Successfully retrieved reports"
// @Failure 400 {object} ErrorResponse "Invalid team member ID"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Security BearerAuth
// @Router /team-members/{id}/reports [get]
func (h *TeamMemberHandler) GetMemberReports(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team member ID"})
		return
	}

	limit, offset, err := parsePagination(c, 50)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.reportService.GetByMember(id, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
