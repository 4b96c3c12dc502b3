package repository

import (
	"component-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRepository handles database operations for weekly reports, peer
// evaluations and HR analyses
type ReportRepository struct {
	db *gorm.DB
}

// Ensure ReportRepository implements ReportRepositoryInterface
var _ ReportRepositoryInterface = (*ReportRepository)(nil)

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create creates a new report. The composite unique index on
// (team_member_id, week_number, year) rejects a second submission for the
// same period.
func (r *ReportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a report with its evaluations and analyses preloaded
func (r *ReportRepository) GetByID(id uuid.UUID) (*models.Report, error) {
	var report models.Report
	err := r.db.
		Preload("TeamMember").
		Preload("PeerEvaluations").
		Preload("HRAnalyses").
		First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetByMember retrieves all reports filed by one member, newest first
func (r *ReportRepository) GetByMember(memberID uuid.UUID, limit, offset int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	query := r.db.Model(&models.Report{}).Where("team_member_id = ?", memberID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("year DESC, week_number DESC").Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

// GetByTeamWeek retrieves all reports filed by a team for one week
func (r *ReportRepository) GetByTeamWeek(team string, week, year int) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.
		Joins("JOIN team_members tm ON tm.id = reports.team_member_id").
		Where("tm.team = ? AND reports.week_number = ? AND reports.year = ?", team, week, year).
		Preload("TeamMember").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Update updates a report
func (r *ReportRepository) Update(report *models.Report) error {
	return r.db.Omit("TeamMember", "PeerEvaluations", "HRAnalyses").Save(report).Error
}

// Delete removes a report and its evaluations and analyses in one
// transaction
func (r *ReportRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", id).Delete(&models.PeerEvaluation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("report_id = ?", id).Delete(&models.HRAnalysis{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Report{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Exists checks if a report exists by ID
func (r *ReportRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Report{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CreateEvaluation inserts a peer evaluation. The composite unique index on
// (report_id, evaluator_id, evaluatee_id) rejects duplicate triples.
func (r *ReportRepository) CreateEvaluation(eval *models.PeerEvaluation) error {
	return r.db.Create(eval).Error
}

// GetEvaluations retrieves all peer evaluations for a report
func (r *ReportRepository) GetEvaluations(reportID uuid.UUID) ([]models.PeerEvaluation, error) {
	var evals []models.PeerEvaluation
	err := r.db.Where("report_id = ?", reportID).Order("created_at ASC").Find(&evals).Error
	if err != nil {
		return nil, err
	}
	return evals, nil
}

// CreateAnalysis inserts an HR analysis
func (r *ReportRepository) CreateAnalysis(analysis *models.HRAnalysis) error {
	return r.db.Create(analysis).Error
}

// GetAnalyses retrieves all HR analyses for a report
func (r *ReportRepository) GetAnalyses(reportID uuid.UUID) ([]models.HRAnalysis, error) {
	var analyses []models.HRAnalysis
	err := r.db.Where("report_id = ?", reportID).Order("created_at ASC").Find(&analyses).Error
	if err != nil {
		return nil, err
	}
	return analyses, nil
}
