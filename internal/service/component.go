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

// ComponentService handles business logic for components
type ComponentService struct {
	repo         repository.ComponentRepositoryInterface
	categoryRepo repository.CategoryRepositoryInterface
	tagRepo      repository.TagRepositoryInterface
	validator    *validator.Validate
}

// NewComponentService creates a new component service
func NewComponentService(repo repository.ComponentRepositoryInterface, categoryRepo repository.CategoryRepositoryInterface, tagRepo repository.TagRepositoryInterface, validator *validator.Validate) *ComponentService {
	return &ComponentService{
		repo:         repo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		validator:    validator,
	}
}

// CreateComponentRequest represents the data needed to register a component
type CreateComponentRequest struct {
	Name            string     `json:"name" validate:"required,min=1,max=200"`
	ComponentType   string     `json:"component_type" validate:"max=100"`
	Version         string     `json:"version" validate:"max=50"`
	Description     string     `json:"description"`
	OriginalProject string     `json:"original_project" validate:"max=200"`
	CategoryID      *uuid.UUID `json:"category_id"`
	Status          *string    `json:"status" validate:"omitempty"`
	Complexity      *string    `json:"complexity" validate:"omitempty"`

	TechnologyStack           json.RawMessage `json:"technology_stack" swaggertype:"object"`
	Dependencies              json.RawMessage `json:"dependencies" swaggertype:"object"`
	AWSServices               json.RawMessage `json:"aws_services" swaggertype:"object"`
	AuthRequirements          string          `json:"auth_requirements"`
	DBRequirements            string          `json:"db_requirements"`
	APIEndpoints              string          `json:"api_endpoints"`
	SetupInstructions         string          `json:"setup_instructions"`
	ConfigurationRequirements string          `json:"configuration_requirements"`
	IntegrationPatterns       string          `json:"integration_patterns"`
	TroubleshootingGuide      string          `json:"troubleshooting_guide"`
	GitRepositoryURL          string          `json:"git_repository_url" validate:"omitempty,url,max=500"`

	HasUnitTests        bool    `json:"has_unit_tests"`
	HasIntegrationTests bool    `json:"has_integration_tests"`
	HasE2ETests         bool    `json:"has_e2e_tests"`
	TestCoverage        float64 `json:"test_coverage" validate:"min=0,max=100"`
	PerformanceMetrics  string  `json:"performance_metrics"`
	KnownLimitations    string  `json:"known_limitations"`

	DocumentationStatus        string          `json:"documentation_status" validate:"max=50"`
	BusinessValue              json.RawMessage `json:"business_value" swaggertype:"object"`
	UpdateFrequency            string          `json:"update_frequency" validate:"max=100"`
	BreakingChangesHistory     string          `json:"breaking_changes_history"`
	BackwardCompatibilityNotes string          `json:"backward_compatibility_notes"`
	SupportContact             string          `json:"support_contact" validate:"max=200"`

	Tags []string `json:"tags"`
}

// UpdateComponentRequest represents a partial update of a component
type UpdateComponentRequest struct {
	Name            *string    `json:"name" validate:"omitempty,min=1,max=200"`
	ComponentType   *string    `json:"component_type" validate:"omitempty,max=100"`
	Version         *string    `json:"version" validate:"omitempty,max=50"`
	Description     *string    `json:"description"`
	OriginalProject *string    `json:"original_project" validate:"omitempty,max=200"`
	CategoryID      *uuid.UUID `json:"category_id"`
	Status          *string    `json:"status" validate:"omitempty"`
	Complexity      *string    `json:"complexity" validate:"omitempty"`

	TechnologyStack           json.RawMessage `json:"technology_stack" swaggertype:"object"`
	Dependencies              json.RawMessage `json:"dependencies" swaggertype:"object"`
	AWSServices               json.RawMessage `json:"aws_services" swaggertype:"object"`
	AuthRequirements          *string         `json:"auth_requirements"`
	DBRequirements            *string         `json:"db_requirements"`
	APIEndpoints              *string         `json:"api_endpoints"`
	SetupInstructions         *string         `json:"setup_instructions"`
	ConfigurationRequirements *string         `json:"configuration_requirements"`
	IntegrationPatterns       *string         `json:"integration_patterns"`
	TroubleshootingGuide      *string         `json:"troubleshooting_guide"`
	GitRepositoryURL          *string         `json:"git_repository_url" validate:"omitempty,url,max=500"`

	HasUnitTests        *bool    `json:"has_unit_tests"`
	HasIntegrationTests *bool    `json:"has_integration_tests"`
	HasE2ETests         *bool    `json:"has_e2e_tests"`
	TestCoverage        *float64 `json:"test_coverage" validate:"omitempty,min=0,max=100"`
	PerformanceMetrics  *string  `json:"performance_metrics"`
	KnownLimitations    *string  `json:"known_limitations"`

	DocumentationStatus        *string         `json:"documentation_status" validate:"omitempty,max=50"`
	BusinessValue              json.RawMessage `json:"business_value" swaggertype:"object"`
	UpdateFrequency            *string         `json:"update_frequency" validate:"omitempty,max=100"`
	BreakingChangesHistory     *string         `json:"breaking_changes_history"`
	BackwardCompatibilityNotes *string         `json:"backward_compatibility_notes"`
	SupportContact             *string         `json:"support_contact" validate:"omitempty,max=200"`

	// Changes is an optional human-readable summary recorded in the
	// version history
	Changes string `json:"changes"`
}

// ComponentListFilters narrows a component listing
type ComponentListFilters struct {
	CategoryID *uuid.UUID
	Tag        string
	Archived   *bool
	Query      string
}

// ComponentListResponse represents a paginated list of components
type ComponentListResponse struct {
	Components []models.Component `json:"components"`
	Total      int64              `json:"total"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// Create registers a new component. Requested tags are resolved (and
// created on demand) first; the component, its initial version-history row
// and its tag associations are then written in a single transaction, so no
// component row survives a partial failure.
func (s *ComponentService) Create(req *CreateComponentRequest, createdBy string) (*models.Component, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if req.Status != nil && !models.ComponentStatus(*req.Status).Valid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if req.Complexity != nil && !models.ComponentComplexity(*req.Complexity).Valid() {
		return nil, apperrors.ErrInvalidComplexity
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewReferenceViolationError("category", "referenced category does not exist")
			}
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
	}

	status := models.ComponentStatusActive
	if req.Status != nil {
		status = models.ComponentStatus(*req.Status)
	}
	complexity := models.ComplexityMedium
	if req.Complexity != nil {
		complexity = models.ComponentComplexity(*req.Complexity)
	}

	component := &models.Component{
		Name:                       req.Name,
		ComponentType:              req.ComponentType,
		Version:                    req.Version,
		Description:                req.Description,
		OriginalProject:            req.OriginalProject,
		CategoryID:                 req.CategoryID,
		Status:                     status,
		Complexity:                 complexity,
		TechnologyStack:            req.TechnologyStack,
		Dependencies:               req.Dependencies,
		AWSServices:                req.AWSServices,
		AuthRequirements:           req.AuthRequirements,
		DBRequirements:             req.DBRequirements,
		APIEndpoints:               req.APIEndpoints,
		SetupInstructions:          req.SetupInstructions,
		ConfigurationRequirements:  req.ConfigurationRequirements,
		IntegrationPatterns:        req.IntegrationPatterns,
		TroubleshootingGuide:       req.TroubleshootingGuide,
		GitRepositoryURL:           req.GitRepositoryURL,
		HasUnitTests:               req.HasUnitTests,
		HasIntegrationTests:        req.HasIntegrationTests,
		HasE2ETests:                req.HasE2ETests,
		TestCoverage:               req.TestCoverage,
		PerformanceMetrics:         req.PerformanceMetrics,
		KnownLimitations:           req.KnownLimitations,
		DocumentationStatus:        req.DocumentationStatus,
		BusinessValue:              req.BusinessValue,
		UpdateFrequency:            req.UpdateFrequency,
		BreakingChangesHistory:     req.BreakingChangesHistory,
		BackwardCompatibilityNotes: req.BackwardCompatibilityNotes,
		SupportContact:             req.SupportContact,
		IsArchived:                 false,
		CreatedBy:                  createdBy,
	}

	history := &models.VersionHistory{
		Version:   req.Version,
		Changes:   "component registered",
		ChangedBy: createdBy,
	}

	// Resolve tags before touching the components table; the associations
	// are written inside the same transaction as the component itself
	tagIDs := make([]uuid.UUID, 0, len(req.Tags))
	for _, tagName := range req.Tags {
		tag, err := s.resolveTagByName(tagName)
		if err != nil {
			return nil, err
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	if err := s.repo.Create(component, history, tagIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrComponentExists
		}
		return nil, fmt.Errorf("failed to create component: %w", err)
	}

	return s.repo.GetByID(component.ID)
}

// GetByID retrieves a component with category and tags
func (s *ComponentService) GetByID(id uuid.UUID) (*models.Component, error) {
	component, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}
	return component, nil
}

// List retrieves components matching the filters
func (s *ComponentService) List(filters ComponentListFilters, limit, offset int) (*ComponentListResponse, error) {
	if limit < 1 || limit > 1000 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	components, total, err := s.repo.List(repository.ComponentFilter{
		CategoryID: filters.CategoryID,
		Tag:        filters.Tag,
		Archived:   filters.Archived,
		Query:      filters.Query,
	}, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}

	return &ComponentListResponse{
		Components: components,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Update applies a partial update and appends a version-history row
func (s *ComponentService) Update(id uuid.UUID, req *UpdateComponentRequest, changedBy string) (*models.Component, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if req.Status != nil && !models.ComponentStatus(*req.Status).Valid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if req.Complexity != nil && !models.ComponentComplexity(*req.Complexity).Valid() {
		return nil, apperrors.ErrInvalidComplexity
	}

	component, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewReferenceViolationError("category", "referenced category does not exist")
			}
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		component.CategoryID = req.CategoryID
	}

	applyComponentUpdate(component, req)

	changes := req.Changes
	if changes == "" {
		changes = "component updated"
	}
	history := &models.VersionHistory{
		Version:   component.Version,
		Changes:   changes,
		ChangedBy: changedBy,
	}

	if err := s.repo.Update(component, history); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrComponentExists
		}
		return nil, fmt.Errorf("failed to update component: %w", err)
	}

	return s.repo.GetByID(component.ID)
}

// SetArchived archives or unarchives a component
func (s *ComponentService) SetArchived(id uuid.UUID, archived bool) error {
	if err := s.repo.SetArchived(id, archived); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrComponentNotFound
		}
		return fmt.Errorf("failed to set archived flag: %w", err)
	}
	return nil
}

// Delete removes a component along with every detail row and tag
// association it owns
func (s *ComponentService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrComponentNotFound
		}
		return fmt.Errorf("failed to delete component: %w", err)
	}
	return nil
}

// AttachTag links an existing tag to a component; duplicate attaches are a
// no-op
func (s *ComponentService) AttachTag(componentID, tagID uuid.UUID) error {
	exists, err := s.repo.Exists(componentID)
	if err != nil {
		return fmt.Errorf("failed to check component: %w", err)
	}
	if !exists {
		return apperrors.ErrComponentNotFound
	}

	if _, err := s.tagRepo.GetByID(tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTagNotFound
		}
		return fmt.Errorf("failed to resolve tag: %w", err)
	}

	if err := s.repo.AttachTag(componentID, tagID); err != nil {
		return fmt.Errorf("failed to attach tag: %w", err)
	}
	return nil
}

// DetachTag removes a tag association, reporting not-found when the tag is
// not currently attached
func (s *ComponentService) DetachTag(componentID, tagID uuid.UUID) error {
	if err := s.repo.DetachTag(componentID, tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTagAssociationNotFound
		}
		return fmt.Errorf("failed to detach tag: %w", err)
	}
	return nil
}

// resolveTagByName looks up a tag by name, creating it on demand
func (s *ComponentService) resolveTagByName(name string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByName(name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to resolve tag: %w", err)
	}

	tag = &models.Tag{Name: name}
	if err := s.tagRepo.Create(tag); err != nil {
		// Lost a create race; the tag exists now
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if tag, err = s.tagRepo.GetByName(name); err != nil {
				return nil, fmt.Errorf("failed to resolve tag after conflict: %w", err)
			}
			return tag, nil
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

// applyComponentUpdate copies the set fields of a partial update onto the
// component
func applyComponentUpdate(c *models.Component, req *UpdateComponentRequest) {
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.ComponentType != nil {
		c.ComponentType = *req.ComponentType
	}
	if req.Version != nil {
		c.Version = *req.Version
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.OriginalProject != nil {
		c.OriginalProject = *req.OriginalProject
	}
	if req.Status != nil {
		c.Status = models.ComponentStatus(*req.Status)
	}
	if req.Complexity != nil {
		c.Complexity = models.ComponentComplexity(*req.Complexity)
	}
	if req.TechnologyStack != nil {
		c.TechnologyStack = req.TechnologyStack
	}
	if req.Dependencies != nil {
		c.Dependencies = req.Dependencies
	}
	if req.AWSServices != nil {
		c.AWSServices = req.AWSServices
	}
	if req.AuthRequirements != nil {
		c.AuthRequirements = *req.AuthRequirements
	}
	if req.DBRequirements != nil {
		c.DBRequirements = *req.DBRequirements
	}
	if req.APIEndpoints != nil {
		c.APIEndpoints = *req.APIEndpoints
	}
	if req.SetupInstructions != nil {
		c.SetupInstructions = *req.SetupInstructions
	}
	if req.ConfigurationRequirements != nil {
		c.ConfigurationRequirements = *req.ConfigurationRequirements
	}
	if req.IntegrationPatterns != nil {
		c.IntegrationPatterns = *req.IntegrationPatterns
	}
	if req.TroubleshootingGuide != nil {
		c.TroubleshootingGuide = *req.TroubleshootingGuide
	}
	if req.GitRepositoryURL != nil {
		c.GitRepositoryURL = *req.GitRepositoryURL
	}
	if req.HasUnitTests != nil {
		c.HasUnitTests = *req.HasUnitTests
	}
	if req.HasIntegrationTests != nil {
		c.HasIntegrationTests = *req.HasIntegrationTests
	}
	if req.HasE2ETests != nil {
		c.HasE2ETests = *req.HasE2ETests
	}
	if req.TestCoverage != nil {
		c.TestCoverage = *req.TestCoverage
	}
	if req.PerformanceMetrics != nil {
		c.PerformanceMetrics = *req.PerformanceMetrics
	}
	if req.KnownLimitations != nil {
		c.KnownLimitations = *req.KnownLimitations
	}
	if req.DocumentationStatus != nil {
		c.DocumentationStatus = *req.DocumentationStatus
	}
	if req.BusinessValue != nil {
		c.BusinessValue = req.BusinessValue
	}
	if req.UpdateFrequency != nil {
		c.UpdateFrequency = *req.UpdateFrequency
	}
	if req.BreakingChangesHistory != nil {
		c.BreakingChangesHistory = *req.BreakingChangesHistory
	}
	if req.BackwardCompatibilityNotes != nil {
		c.BackwardCompatibilityNotes = *req.BackwardCompatibilityNotes
	}
	if req.SupportContact != nil {
		c.SupportContact = *req.SupportContact
	}
}
