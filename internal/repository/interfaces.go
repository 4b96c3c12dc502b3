package repository

import (
	"component-catalog-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CategoryRepositoryInterface defines data access for categories
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetAll(limit, offset int) ([]models.Category, int64, error)
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

// TagRepositoryInterface defines data access for tags
type TagRepositoryInterface interface {
	Create(tag *models.Tag) error
	GetAll(limit, offset int) ([]models.Tag, int64, error)
	GetByID(id uuid.UUID) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	Delete(id uuid.UUID) error
}

// ComponentFilter narrows component listings
type ComponentFilter struct {
	CategoryID *uuid.UUID
	Tag        string
	Archived   *bool
	Query      string
}

// ComponentRepositoryInterface defines data access for components
type ComponentRepositoryInterface interface {
	Create(component *models.Component, history *models.VersionHistory, tagIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Component, error)
	GetByName(name string) (*models.Component, error)
	List(filter ComponentFilter, limit, offset int) ([]models.Component, int64, error)
	Update(component *models.Component, history *models.VersionHistory) error
	Delete(id uuid.UUID) error
	SetArchived(id uuid.UUID, archived bool) error
	AttachTag(componentID, tagID uuid.UUID) error
	DetachTag(componentID, tagID uuid.UUID) error
	Exists(id uuid.UUID) (bool, error)
}

// TeamMemberRepositoryInterface defines data access for team members
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetAll(limit, offset int) ([]models.TeamMember, int64, error)
	GetByID(id uuid.UUID) (*models.TeamMember, error)
	GetByEmail(email string) (*models.TeamMember, error)
	Update(member *models.TeamMember) error
	Delete(id uuid.UUID) error
	Exists(id uuid.UUID) (bool, error)
}

// ReportRepositoryInterface defines data access for weekly reports and
// their report-scoped children
type ReportRepositoryInterface interface {
	Create(report *models.Report) error
	GetByID(id uuid.UUID) (*models.Report, error)
	GetByMember(memberID uuid.UUID, limit, offset int) ([]models.Report, int64, error)
	GetByTeamWeek(team string, week, year int) ([]models.Report, error)
	Update(report *models.Report) error
	Delete(id uuid.UUID) error
	Exists(id uuid.UUID) (bool, error)
	CreateEvaluation(eval *models.PeerEvaluation) error
	GetEvaluations(reportID uuid.UUID) ([]models.PeerEvaluation, error)
	CreateAnalysis(analysis *models.HRAnalysis) error
	GetAnalyses(reportID uuid.UUID) ([]models.HRAnalysis, error)
}
