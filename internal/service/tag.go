package service

import (
	"errors"
	"fmt"
	"time"

	"component-catalog-backend/internal/database/models"
	apperrors "component-catalog-backend/internal/errors"
	"component-catalog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// timeFormat is the timestamp layout used in every API response
const timeFormat = time.RFC3339

// TagService provides tag-related business logic
type TagService struct {
	repo      repository.TagRepositoryInterface
	validator *validator.Validate
}

// NewTagService creates a new TagService
func NewTagService(repo repository.TagRepositoryInterface, validator *validator.Validate) *TagService {
	return &TagService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTagRequest represents the data needed to create a tag
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// TagResponse represents a single tag in API responses
type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
}

// TagListResponse represents a paginated list of tags
type TagListResponse struct {
	Tags   []TagResponse `json:"tags"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// Create creates a new tag. Tags are created on demand, so a duplicate name
// is surfaced as a conflict for the caller to resolve.
func (s *TagService) Create(req *CreateTagRequest) (*TagResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", err.Error())
	}

	tag := &models.Tag{Name: req.Name}
	if err := s.repo.Create(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTagExists
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return s.toResponse(tag), nil
}

// GetAll retrieves tags with pagination
func (s *TagService) GetAll(limit, offset int) (*TagListResponse, error) {
	if limit < 1 || limit > 1000 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	tags, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	responses := make([]TagResponse, len(tags))
	for i, t := range tags {
		responses[i] = *s.toResponse(&t)
	}

	return &TagListResponse{
		Tags:   responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// GetByID retrieves a tag by ID
func (s *TagService) GetByID(id uuid.UUID) (*TagResponse, error) {
	tag, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return s.toResponse(tag), nil
}

// Delete deletes a tag and its component associations
func (s *TagService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTagNotFound
		}
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

// toResponse converts a Tag model to API response
func (s *TagService) toResponse(tag *models.Tag) *TagResponse {
	return &TagResponse{
		ID:        tag.ID,
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt.Format(timeFormat),
	}
}
