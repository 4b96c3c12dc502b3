package testutils

import (
	"encoding/json"
	"fmt"
	"time"

	"component-catalog-backend/internal/database/models"

	"github.com/google/uuid"
)

// CategoryFactory provides methods to create test Category data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a test Category with default values
func (f *CategoryFactory) Create() *models.Category {
	id := uuid.New()
	return &models.Category{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "category-" + id.String()[:8],
		Description: "A test category",
	}
}

// WithName sets a custom name for the category
func (f *CategoryFactory) WithName(name string) *models.Category {
	cat := f.Create()
	cat.Name = name
	return cat
}

// TagFactory provides methods to create test Tag data
type TagFactory struct{}

// NewTagFactory creates a new TagFactory
func NewTagFactory() *TagFactory {
	return &TagFactory{}
}

// Create creates a test Tag with default values
func (f *TagFactory) Create() *models.Tag {
	id := uuid.New()
	return &models.Tag{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "tag-" + id.String()[:8],
	}
}

// WithName sets a custom name for the tag
func (f *TagFactory) WithName(name string) *models.Tag {
	tag := f.Create()
	tag.Name = name
	return tag
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a test Component with default values
func (f *ComponentFactory) Create() *models.Component {
	id := uuid.New()
	return &models.Component{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             "component-" + id.String()[:8],
		ComponentType:    "library",
		Version:          "1.0.0",
		Description:      "A test component",
		Status:           models.ComponentStatusActive,
		Complexity:       models.ComplexityMedium,
		TechnologyStack:  json.RawMessage(`["go", "postgres"]`),
		GitRepositoryURL: "https://github.com/example/component",
		HasUnitTests:     true,
		TestCoverage:     80,
		CreatedBy:        "tester",
	}
}

// WithName sets a custom name for the component
func (f *ComponentFactory) WithName(name string) *models.Component {
	c := f.Create()
	c.Name = name
	return c
}

// WithCategory sets the category ID for the component
func (f *ComponentFactory) WithCategory(categoryID uuid.UUID) *models.Component {
	c := f.Create()
	c.CategoryID = &categoryID
	return c
}

// WithStatus sets a custom status for the component
func (f *ComponentFactory) WithStatus(status models.ComponentStatus) *models.Component {
	c := f.Create()
	c.Status = status
	return c
}

// Archived creates an archived component
func (f *ComponentFactory) Archived() *models.Component {
	c := f.Create()
	c.IsArchived = true
	return c
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create() *models.TeamMember {
	id := uuid.New()
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Test Member",
		Email: fmt.Sprintf("member-%s@test.com", id.String()[:8]),
		Team:  "platform",
		Role:  "developer",
	}
}

// WithEmail sets a custom email for the team member
func (f *TeamMemberFactory) WithEmail(email string) *models.TeamMember {
	m := f.Create()
	m.Email = email
	return m
}

// WithTeam sets a custom team for the team member
func (f *TeamMemberFactory) WithTeam(team string) *models.TeamMember {
	m := f.Create()
	m.Team = team
	return m
}

// ReportFactory provides methods to create test Report data
type ReportFactory struct{}

// NewReportFactory creates a new ReportFactory
func NewReportFactory() *ReportFactory {
	return &ReportFactory{}
}

// Create creates a test Report for the given member with default values
func (f *ReportFactory) Create(memberID uuid.UUID) *models.Report {
	return &models.Report{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamMemberID:        memberID,
		WeekNumber:          10,
		Year:                2025,
		CompletedTasks:      json.RawMessage(`["task one"]`),
		PendingTasks:        json.RawMessage(`["task two"]`),
		ProductivityRating:  4,
		ProductivityDetails: "steady week",
		ProductiveTime:      "morning",
		ProductivePlace:     "office",
	}
}

// ForWeek sets the week and year for the report
func (f *ReportFactory) ForWeek(memberID uuid.UUID, week, year int) *models.Report {
	r := f.Create(memberID)
	r.WeekNumber = week
	r.Year = year
	return r
}
