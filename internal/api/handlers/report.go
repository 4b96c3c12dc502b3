package handlers

import (
	"net/http"
	"strconv"

	"component-catalog-backend/internal/auth"
	"component-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles HTTP requests for weekly progress reports
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// CreateReport handles POST /reports
// @Summary File a weekly report
// @Description File a weekly progress report. A member can file at most one report per week/year pair.
// @Tags reports
// @Accept json
// @Produce json
// @Param report body service.CreateReportRequest true "Report data"
// @Success 201 {object} models.Report "Successfully filed report"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Report already filed for this week or team member missing"
// @Security BearerAuth
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req service.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetReport handles GET /reports/:id
// @Summary Get report by ID
// @Description Get a report with its peer evaluations and HR analyses
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} models.Report "Successfully retrieved report"
// @Failure 400 {object} ErrorResponse "Invalid report ID"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Security BearerAuth
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	report, err := h.reportService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetTeamWeekReports handles GET /reports/team/:team
// @Summary List a team's reports for one week
// @Description Get all reports filed by members of a team for a given week and year
// @Tags reports
// @Accept json
// @Produce json
// @Param team path string true "Team name"
// @Param week query int true "ISO week number (1-53)"
// @Param year query int true "Year"
// @Success 200 {object} map[string]interface{} "Successfully retrieved reports"
// @Failure 400 {object} ErrorResponse "Invalid week or year"
// @Security BearerAuth
// @Router /reports/team/{team} [get]
func (h *ReportHandler) GetTeamWeekReports(c *gin.Context) {
	team := c.Param("team")

	week, err := strconv.Atoi(c.Query("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week query parameter is required"})
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year query parameter is required"})
		return
	}

	reports, err := h.reportService.GetByTeamWeek(team, week, year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"team":    team,
		"week":    week,
		"year":    year,
	})
}

// UpdateReport handles PUT /reports/:id
// @Summary Update report
// @Description Apply a partial update to a report's content. The submission period is immutable.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param report body service.UpdateReportRequest true "Updated report data"
// @Success 200 {object} models.Report "Successfully updated report"
// @Failure 400 {object} ErrorResponse "Invalid request body or report ID"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Security BearerAuth
// @Router /reports/{id} [put]
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var req service.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// DeleteReport handles DELETE /reports/:id
// @Summary Delete report
// @Description Delete a report together with its evaluations and analyses
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 204 "Successfully deleted report"
// @Failure 400 {object} ErrorResponse "Invalid report ID"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Security BearerAuth
// @Router /reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	if err := h.reportService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// CreateEvaluation handles POST /reports/:id/evaluations
// @Summary File a peer evaluation
// @Description File one peer's rating for a report. Each (report, evaluator, evaluatee) triple is unique; self-evaluations are rejected.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param evaluation body service.CreateEvaluationRequest true "Evaluation data"
// @Success 201 {object} models.PeerEvaluation "Successfully filed evaluation"
// @Failure 400 {object} ErrorResponse "Invalid request body, rating out of range or self-evaluation"
// @Failure 409 {object} ErrorResponse "Evaluation already filed or referenced row missing"
// @Security BearerAuth
// @Router /reports/{id}/evaluations [post]
func (h *ReportHandler) CreateEvaluation(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var req service.CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eval, err := h.reportService.CreateEvaluation(reportID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, eval)
}

// GetEvaluations handles GET /reports/:id/evaluations
// @Summary List peer evaluations
// @Description Get all peer evaluations filed for a report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved evaluations"
// @Failure 400 {object} ErrorResponse "Invalid report ID"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Security BearerAuth
// @Router /reports/{id}/evaluations [get]
func (h *ReportHandler) GetEvaluations(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	evals, err := h.reportService.GetEvaluations(reportID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"evaluations": evals,
		"total":       len(evals),
	})
}

// CreateAnalysis handles POST /reports/:id/analyses
// @Summary File an HR analysis
// @Description File an HR analysis for a report. The authenticated user is recorded as the analyst.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param analysis body service.CreateAnalysisRequest true "Analysis data"
// @Success 201 {object} models.HRAnalysis "Successfully filed analysis"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Referenced report missing"
// @Security BearerAuth
// @Router /reports/{id}/analyses [post]
func (h *ReportHandler) CreateAnalysis(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var req service.CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analyzedBy, _ := auth.GetUsername(c)
	analysis, err := h.reportService.CreateAnalysis(reportID, &req, analyzedBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, analysis)
}

// GetAnalyses handles GET /reports/:id/analyses
// @Summary List HR analyses
// @Description Get all HR analyses filed for a report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved analyses"
// @Failure 400 {object} ErrorResponse "Invalid report ID"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Security BearerAuth
// @Router /reports/{id}/analyses [get]
func (h *ReportHandler) GetAnalyses(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	analyses, err := h.reportService.GetAnalyses(reportID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analyses": analyses,
		"total":    len(analyses),
	})
}
