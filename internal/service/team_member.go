package service

import (
	"errors"
	"fmt"

	"component-catalog-backend/internal/database/models"
	apperrors "component-catalog-backend/internal/errors"
	"component-catalog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberService handles business logic for team members
type TeamMemberService struct {
	repo      repository.TeamMemberRepositoryInterface
	validator *validator.Validate
}

// NewTeamMemberService creates a new team member service
func NewTeamMemberService(repo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *TeamMemberService {
	return &TeamMemberService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamMemberRequest represents the data needed to create a team member
type CreateTeamMemberRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email,max=255"`
	Team  string `json:"team" validate:"max=100"`
	Role  string `json:"role" validate:"max=100"`
}

// UpdateTeamMemberRequest represents the data needed to update a team member
type UpdateTeamMemberRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=200"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
	Team  *string `json:"team" validate:"omitempty,max=100"`
	Role  *string `json:"role" validate:"omitempty,max=100"`
}

// TeamMemberListResponse represents a paginated list of team members
type TeamMemberListResponse struct {
	Members []models.TeamMember `json:"members"`
	Total   int64               `json:"total"`
	Limit   int                 `json:"limit"`
	Offset  int                 `json:"offset"`
}

// Create creates a new team member. Email uniqueness is resolved by the
// unique index and surfaced as a conflict.
func (s *TeamMemberService) Create(req *CreateTeamMemberRequest) (*models.TeamMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	member := &models.TeamMember{
		Name:  req.Name,
		Email: req.Email,
		Team:  req.Team,
		Role:  req.Role,
	}

	if err := s.repo.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamMemberExists
		}
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	return member, nil
}

// GetAll retrieves team members with pagination
func (s *TeamMemberService) GetAll(limit, offset int) (*TeamMemberListResponse, error) {
	if limit < 1 || limit > 1000 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	members, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	return &TeamMemberListResponse{
		Members: members,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// GetByID retrieves a team member by ID
func (s *TeamMemberService) GetByID(id uuid.UUID) (*models.TeamMember, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return member, nil
}

// Update updates an existing team member
func (s *TeamMemberService) Update(id uuid.UUID, req *UpdateTeamMemberRequest) (*models.TeamMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Team != nil {
		member.Team = *req.Team
	}
	if req.Role != nil {
		member.Role = *req.Role
	}

	if err := s.repo.Update(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamMemberExists
		}
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	return member, nil
}

// Delete deletes a team member and everything they filed
func (s *TeamMemberService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}
