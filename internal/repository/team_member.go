package repository

import (
	"component-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// Ensure TeamMemberRepository implements TeamMemberRepositoryInterface
var _ TeamMemberRepositoryInterface = (*TeamMemberRepository)(nil)

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new team member
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetAll retrieves all team members with pagination
func (r *TeamMemberRepository) GetAll(limit, offset int) ([]models.TeamMember, int64, error) {
	var members []models.TeamMember
	var total int64

	if err := r.db.Model(&models.TeamMember{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Limit(limit).Offset(offset).Order("name ASC").Find(&members).Error; err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// GetByID retrieves a team member by ID
func (r *TeamMemberRepository) GetByID(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail retrieves a team member by unique email
func (r *TeamMemberRepository) GetByEmail(email string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.First(&member, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// Update updates a team member
func (r *TeamMemberRepository) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

// Delete removes a team member and everything filed under them in one
// transaction: evaluations referencing their reports, the reports, and any
// evaluations they authored or received on other reports
func (r *TeamMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var reportIDs []uuid.UUID
		if err := tx.Model(&models.Report{}).Where("team_member_id = ?", id).Pluck("id", &reportIDs).Error; err != nil {
			return err
		}
		if len(reportIDs) > 0 {
			if err := tx.Where("report_id IN ?", reportIDs).Delete(&models.PeerEvaluation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("report_id IN ?", reportIDs).Delete(&models.HRAnalysis{}).Error; err != nil {
				return err
			}
			if err := tx.Where("team_member_id = ?", id).Delete(&models.Report{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("evaluator_id = ? OR evaluatee_id = ?", id, id).Delete(&models.PeerEvaluation{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.TeamMember{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Exists checks if a team member exists by ID
func (r *TeamMemberRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
