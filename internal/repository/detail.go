package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedDetail is implemented (via models.BaseModel and
// models.ComponentOwned) by every component-owned detail row
type OwnedDetail interface {
	SetComponentID(id uuid.UUID)
	GetComponentID() uuid.UUID
	SetID(id uuid.UUID)
	GetID() uuid.UUID
	SetCreatedAt(t time.Time)
	GetCreatedAt() time.Time
}

// Detail constrains a detail model pointer
type Detail[T any] interface {
	*T
	OwnedDetail
}

// DetailRepository handles database operations for one component-owned
// detail table. All ten detail tables share the same flat CRUD shape, so a
// single generic repository serves them all.
type DetailRepository[T any, PT Detail[T]] struct {
	db *gorm.DB
}

// NewDetailRepository creates a detail repository for one detail model
func NewDetailRepository[T any, PT Detail[T]](db *gorm.DB) *DetailRepository[T, PT] {
	return &DetailRepository[T, PT]{db: db}
}

// Create inserts a detail row
func (r *DetailRepository[T, PT]) Create(row PT) error {
	return r.db.Create(row).Error
}

// GetByID retrieves a detail row by its UUID
func (r *DetailRepository[T, PT]) GetByID(id uuid.UUID) (PT, error) {
	var row T
	if err := r.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByComponent retrieves all rows owned by a component with pagination
func (r *DetailRepository[T, PT]) ListByComponent(componentID uuid.UUID, limit, offset int) ([]T, int64, error) {
	var rows []T
	var total int64

	query := r.db.Model(new(T)).Where("component_id = ?", componentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Limit(limit).Offset(offset).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// Update saves a detail row
func (r *DetailRepository[T, PT]) Update(row PT) error {
	return r.db.Save(row).Error
}

// Delete removes a detail row by ID
func (r *DetailRepository[T, PT]) Delete(id uuid.UUID) error {
	result := r.db.Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
