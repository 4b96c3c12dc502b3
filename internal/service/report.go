package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"component-catalog-backend/internal/database/models"
	apperrors "component-catalog-backend/internal/errors"
	"component-catalog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportService handles business logic for weekly progress reports and
// their report-scoped children (peer evaluations, HR analyses)
type ReportService struct {
	repo       repository.ReportRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	validator  *validator.Validate
}

// NewReportService creates a new report service
func NewReportService(repo repository.ReportRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *ReportService {
	return &ReportService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// CreateReportRequest represents one weekly submission
type CreateReportRequest struct {
	TeamMemberID uuid.UUID `json:"team_member_id" validate:"required"`
	WeekNumber   int       `json:"week_number" validate:"required,min=1,max=53"`
	Year         int       `json:"year" validate:"required,min=2000,max=2100"`

	CompletedTasks json.RawMessage `json:"completed_tasks" swaggertype:"object"`
	PendingTasks   json.RawMessage `json:"pending_tasks" swaggertype:"object"`
	DroppedTasks   json.RawMessage `json:"dropped_tasks" swaggertype:"object"`
	Projects       json.RawMessage `json:"projects" swaggertype:"object"`

	ProductivityRating      int             `json:"productivity_rating"`
	ProductivitySuggestions json.RawMessage `json:"productivity_suggestions" swaggertype:"object"`
	ProductivityDetails     string          `json:"productivity_details"`
	ProductiveTime          string          `json:"productive_time" validate:"max=100"`
	ProductivePlace         string          `json:"productive_place" validate:"max=100"`
}

// UpdateReportRequest represents a partial update of a report's content.
// The submission period (member, week, year) is immutable.
type UpdateReportRequest struct {
	CompletedTasks json.RawMessage `json:"completed_tasks" swaggertype:"object"`
	PendingTasks   json.RawMessage `json:"pending_tasks" swaggertype:"object"`
	DroppedTasks   json.RawMessage `json:"dropped_tasks" swaggertype:"object"`
	Projects       json.RawMessage `json:"projects" swaggertype:"object"`

	ProductivityRating      *int            `json:"productivity_rating"`
	ProductivitySuggestions json.RawMessage `json:"productivity_suggestions" swaggertype:"object"`
	ProductivityDetails     *string         `json:"productivity_details"`
	ProductiveTime          *string         `json:"productive_time" validate:"omitempty,max=100"`
	ProductivePlace         *string         `json:"productive_place" validate:"omitempty,max=100"`
}

// CreateEvaluationRequest represents one peer's rating for a report
type CreateEvaluationRequest struct {
	EvaluatorID uuid.UUID `json:"evaluator_id" validate:"required"`
	EvaluateeID uuid.UUID `json:"evaluatee_id" validate:"required"`
	Rating      int       `json:"rating"`
	Comments    string    `json:"comments"`
}

// CreateAnalysisRequest represents one HR analysis of a report
type CreateAnalysisRequest struct {
	Summary         string  `json:"summary" validate:"required"`
	Sentiment       *string `json:"sentiment"`
	Recommendations string  `json:"recommendations"`
}

// ReportListResponse represents a paginated list of reports
type ReportListResponse struct {
	Reports []models.Report `json:"reports"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// Create files a weekly report. A second submission for the same member,
// week and year is rejected by the composite unique index and surfaced as
// a conflict.
func (s *ReportService) Create(req *CreateReportRequest) (*models.Report, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.ProductivityRating < 1 || req.ProductivityRating > 5 {
		return nil, apperrors.ErrRatingOutOfRange
	}

	exists, err := s.memberRepo.Exists(req.TeamMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to check team member: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrTeamMemberReference
	}

	report := &models.Report{
		TeamMemberID:            req.TeamMemberID,
		WeekNumber:              req.WeekNumber,
		Year:                    req.Year,
		CompletedTasks:          req.CompletedTasks,
		PendingTasks:            req.PendingTasks,
		DroppedTasks:            req.DroppedTasks,
		Projects:                req.Projects,
		ProductivityRating:      req.ProductivityRating,
		ProductivitySuggestions: req.ProductivitySuggestions,
		ProductivityDetails:     req.ProductivityDetails,
		ProductiveTime:          req.ProductiveTime,
		ProductivePlace:         req.ProductivePlace,
	}

	if err := s.repo.Create(report); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrReportExists
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.ErrTeamMemberReference
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return report, nil
}

// GetByID retrieves a report with evaluations and analyses
func (s *ReportService) GetByID(id uuid.UUID) (*models.Report, error) {
	report, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// GetByMember retrieves a member's reports, newest first
func (s *ReportService) GetByMember(memberID uuid.UUID, limit, offset int) (*ReportListResponse, error) {
	if limit < 1 || limit > 1000 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	exists, err := s.memberRepo.Exists(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to check team member: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrTeamMemberNotFound
	}

	reports, total, err := s.repo.GetByMember(memberID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get reports: %w", err)
	}

	return &ReportListResponse{
		Reports: reports,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// GetByTeamWeek retrieves all reports a team filed for one week
func (s *ReportService) GetByTeamWeek(team string, week, year int) ([]models.Report, error) {
	if week < 1 || week > 53 {
		return nil, apperrors.ErrInvalidWeekNumber
	}
	reports, err := s.repo.GetByTeamWeek(team, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get team reports: %w", err)
	}
	return reports, nil
}

// Update applies a partial update to a report's content
func (s *ReportService) Update(id uuid.UUID, req *UpdateReportRequest) (*models.Report, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.ProductivityRating != nil && (*req.ProductivityRating < 1 || *req.ProductivityRating > 5) {
		return nil, apperrors.ErrRatingOutOfRange
	}

	report, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if req.CompletedTasks != nil {
		report.CompletedTasks = req.CompletedTasks
	}
	if req.PendingTasks != nil {
		report.PendingTasks = req.PendingTasks
	}
	if req.DroppedTasks != nil {
		report.DroppedTasks = req.DroppedTasks
	}
	if req.Projects != nil {
		report.Projects = req.Projects
	}
	if req.ProductivityRating != nil {
		report.ProductivityRating = *req.ProductivityRating
	}
	if req.ProductivitySuggestions != nil {
		report.ProductivitySuggestions = req.ProductivitySuggestions
	}
	if req.ProductivityDetails != nil {
		report.ProductivityDetails = *req.ProductivityDetails
	}
	if req.ProductiveTime != nil {
		report.ProductiveTime = *req.ProductiveTime
	}
	if req.ProductivePlace != nil {
		report.ProductivePlace = *req.ProductivePlace
	}

	if err := s.repo.Update(report); err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	return report, nil
}

// Delete removes a report along with its evaluations and analyses
func (s *ReportService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrReportNotFound
		}
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// CreateEvaluation files one peer's rating for a report. Ratings outside
// [1,5] and self-evaluations are rejected before reaching storage;
// duplicate (report, evaluator, evaluatee) triples surface as conflicts.
func (s *ReportService) CreateEvaluation(reportID uuid.UUID, req *CreateEvaluationRequest) (*models.PeerEvaluation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrRatingOutOfRange
	}
	if req.EvaluatorID == req.EvaluateeID {
		return nil, apperrors.ErrSelfEvaluation
	}

	exists, err := s.repo.Exists(reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to check report: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrReportReference
	}

	for _, memberID := range []uuid.UUID{req.EvaluatorID, req.EvaluateeID} {
		exists, err := s.memberRepo.Exists(memberID)
		if err != nil {
			return nil, fmt.Errorf("failed to check team member: %w", err)
		}
		if !exists {
			return nil, apperrors.ErrTeamMemberReference
		}
	}

	eval := &models.PeerEvaluation{
		ReportID:    reportID,
		EvaluatorID: req.EvaluatorID,
		EvaluateeID: req.EvaluateeID,
		Rating:      req.Rating,
		Comments:    req.Comments,
	}

	if err := s.repo.CreateEvaluation(eval); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEvaluationExists
		}
		return nil, fmt.Errorf("failed to create peer evaluation: %w", err)
	}

	return eval, nil
}

// GetEvaluations retrieves all peer evaluations for a report
func (s *ReportService) GetEvaluations(reportID uuid.UUID) ([]models.PeerEvaluation, error) {
	exists, err := s.repo.Exists(reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to check report: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrReportNotFound
	}

	evals, err := s.repo.GetEvaluations(reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get peer evaluations: %w", err)
	}
	return evals, nil
}

// CreateAnalysis files one HR analysis for a report
func (s *ReportService) CreateAnalysis(reportID uuid.UUID, req *CreateAnalysisRequest, analyzedBy string) (*models.HRAnalysis, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Sentiment != nil && !models.AnalysisSentiment(*req.Sentiment).Valid() {
		return nil, apperrors.ErrInvalidSentiment
	}

	exists, err := s.repo.Exists(reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to check report: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrReportReference
	}

	sentiment := models.SentimentNeutral
	if req.Sentiment != nil {
		sentiment = models.AnalysisSentiment(*req.Sentiment)
	}

	analysis := &models.HRAnalysis{
		ReportID:        reportID,
		Summary:         req.Summary,
		Sentiment:       sentiment,
		Recommendations: req.Recommendations,
		AnalyzedBy:      analyzedBy,
	}

	if err := s.repo.CreateAnalysis(analysis); err != nil {
		return nil, fmt.Errorf("failed to create hr analysis: %w", err)
	}

	return analysis, nil
}

// GetAnalyses retrieves all HR analyses for a report
func (s *ReportService) GetAnalyses(reportID uuid.UUID) ([]models.HRAnalysis, error) {
	exists, err := s.repo.Exists(reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to check report: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrReportNotFound
	}

	analyses, err := s.repo.GetAnalyses(reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hr analyses: %w", err)
	}
	return analyses, nil
}
