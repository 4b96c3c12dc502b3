package service

import (
	"errors"
	"fmt"

	apperrors "component-catalog-backend/internal/errors"
	"component-catalog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DetailListResponse represents a paginated list of detail rows
type DetailListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// DetailService provides business logic for one component-owned detail
// table. Every detail table is a flat CRUD record scoped to a component,
// so one generic service covers all of them.
type DetailService[T any, PT repository.Detail[T]] struct {
	repo          *repository.DetailRepository[T, PT]
	componentRepo repository.ComponentRepositoryInterface
	validator     *validator.Validate
}

// NewDetailService creates a detail service for one detail model
func NewDetailService[T any, PT repository.Detail[T]](repo *repository.DetailRepository[T, PT], componentRepo repository.ComponentRepositoryInterface, validator *validator.Validate) *DetailService[T, PT] {
	return &DetailService[T, PT]{
		repo:          repo,
		componentRepo: componentRepo,
		validator:     validator,
	}
}

// Create inserts a detail row under a component. Writes against a missing
// component are rejected as a reference violation.
func (s *DetailService[T, PT]) Create(componentID uuid.UUID, row PT) (PT, error) {
	exists, err := s.componentRepo.Exists(componentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check component: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrComponentReference
	}

	row.SetComponentID(componentID)
	if err := s.validator.Struct(row); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if err := s.repo.Create(row); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.ErrComponentReference
		}
		return nil, fmt.Errorf("failed to create detail: %w", err)
	}
	return row, nil
}

// ListByComponent retrieves the component's detail rows with pagination
func (s *DetailService[T, PT]) ListByComponent(componentID uuid.UUID, limit, offset int) (*DetailListResponse[T], error) {
	if limit < 1 || limit > 1000 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	exists, err := s.componentRepo.Exists(componentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check component: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrComponentNotFound
	}

	rows, total, err := s.repo.ListByComponent(componentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list details: %w", err)
	}

	return &DetailListResponse[T]{
		Items:  rows,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// Update applies new field values to a detail row. The row must belong to
// the component in the request path.
func (s *DetailService[T, PT]) Update(componentID, detailID uuid.UUID, row PT) (PT, error) {
	existing, err := s.repo.GetByID(detailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDetailNotFound
		}
		return nil, fmt.Errorf("failed to get detail: %w", err)
	}
	if existing.GetComponentID() != componentID {
		return nil, apperrors.ErrDetailNotFound
	}

	// Save writes the full row; carry over identity and creation time
	row.SetID(detailID)
	row.SetComponentID(componentID)
	row.SetCreatedAt(existing.GetCreatedAt())
	if err := s.validator.Struct(row); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if err := s.repo.Update(row); err != nil {
		return nil, fmt.Errorf("failed to update detail: %w", err)
	}
	return row, nil
}

// GetByID retrieves one detail row owned by the component
func (s *DetailService[T, PT]) GetByID(componentID, detailID uuid.UUID) (PT, error) {
	row, err := s.repo.GetByID(detailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDetailNotFound
		}
		return nil, fmt.Errorf("failed to get detail: %w", err)
	}
	if row.GetComponentID() != componentID {
		return nil, apperrors.ErrDetailNotFound
	}
	return row, nil
}

// Delete removes one detail row owned by the component
func (s *DetailService[T, PT]) Delete(componentID, detailID uuid.UUID) error {
	row, err := s.repo.GetByID(detailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDetailNotFound
		}
		return fmt.Errorf("failed to get detail: %w", err)
	}
	if row.GetComponentID() != componentID {
		return apperrors.ErrDetailNotFound
	}

	if err := s.repo.Delete(detailID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDetailNotFound
		}
		return fmt.Errorf("failed to delete detail: %w", err)
	}
	return nil
}
