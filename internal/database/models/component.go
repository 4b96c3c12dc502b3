package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Component represents a reusable software artifact tracked by the catalog
type Component struct {
	BaseModel
	Name            string              `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,min=1,max=200"`
	ComponentType   string              `json:"component_type" gorm:"size:100"`
	Version         string              `json:"version" gorm:"size:50"`
	Description     string              `json:"description" gorm:"type:text"`
	OriginalProject string              `json:"original_project" gorm:"size:200"`
	CategoryID      *uuid.UUID          `json:"category_id" gorm:"type:uuid;index"`
	Status          ComponentStatus     `json:"status" gorm:"type:varchar(50);default:'active'"`
	Complexity      ComponentComplexity `json:"complexity" gorm:"type:varchar(20);default:'medium'"`

	// Technical details
	TechnologyStack           json.RawMessage `json:"technology_stack" gorm:"type:jsonb"`
	Dependencies              json.RawMessage `json:"dependencies" gorm:"type:jsonb"`
	AWSServices               json.RawMessage `json:"aws_services" gorm:"type:jsonb"`
	AuthRequirements          string          `json:"auth_requirements" gorm:"type:text"`
	DBRequirements            string          `json:"db_requirements" gorm:"type:text"`
	APIEndpoints              string          `json:"api_endpoints" gorm:"type:text"`
	SetupInstructions         string          `json:"setup_instructions" gorm:"type:text"`
	ConfigurationRequirements string          `json:"configuration_requirements" gorm:"type:text"`
	IntegrationPatterns       string          `json:"integration_patterns" gorm:"type:text"`
	TroubleshootingGuide      string          `json:"troubleshooting_guide" gorm:"type:text"`
	GitRepositoryURL          string          `json:"git_repository_url" gorm:"size:500"`

	// Testing
	HasUnitTests        bool    `json:"has_unit_tests"`
	HasIntegrationTests bool    `json:"has_integration_tests"`
	HasE2ETests         bool    `json:"has_e2e_tests"`
	TestCoverage        float64 `json:"test_coverage"`
	PerformanceMetrics  string  `json:"performance_metrics" gorm:"type:text"`
	KnownLimitations    string  `json:"known_limitations" gorm:"type:text"`

	// Documentation and business value
	DocumentationStatus        string          `json:"documentation_status" gorm:"size:50"`
	BusinessValue              json.RawMessage `json:"business_value" gorm:"type:jsonb"`
	UpdateFrequency            string          `json:"update_frequency" gorm:"size:100"`
	BreakingChangesHistory     string          `json:"breaking_changes_history" gorm:"type:text"`
	BackwardCompatibilityNotes string          `json:"backward_compatibility_notes" gorm:"type:text"`
	SupportContact             string          `json:"support_contact" gorm:"size:200"`

	IsArchived bool   `json:"is_archived" gorm:"not null;default:false"`
	CreatedBy  string `json:"created_by" gorm:"size:100"`

	// Relationships
	Category                *Category                `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Tags                    []Tag                    `json:"tags,omitempty" gorm:"many2many:component_tags;"`
	TechnicalSpecifications []TechnicalSpecification `json:"technical_specifications,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
	Features                []Feature                `json:"features,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
	ImplementationExamples  []ImplementationExample  `json:"implementation_examples,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
	SampleApplications      []SampleApplication      `json:"sample_applications,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
	VersionHistory          []VersionHistory         `json:"version_history,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
	UsageStatistics         []UsageStatistic         `json:"usage_statistics,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
	Files                   []ComponentFile          `json:"files,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
	TestingQualityMetrics   []TestingQualityMetric   `json:"testing_quality_metrics,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
	BusinessValueMetrics    []BusinessValueMetric    `json:"business_value_metrics,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
	Maintainers             []Maintainer             `json:"maintainers,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}
