package repository

import (
	"component-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TagRepository handles database operations for tags
type TagRepository struct {
	db *gorm.DB
}

// Ensure TagRepository implements TagRepositoryInterface
var _ TagRepositoryInterface = (*TagRepository)(nil)

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create creates a new tag
func (r *TagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// GetAll retrieves all tags with pagination
func (r *TagRepository) GetAll(limit, offset int) ([]models.Tag, int64, error) {
	var tags []models.Tag
	var total int64

	if err := r.db.Model(&models.Tag{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Limit(limit).Offset(offset).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, 0, err
	}

	return tags, total, nil
}

// GetByID retrieves a tag by its UUID
func (r *TagRepository) GetByID(id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByName retrieves a tag by its unique name
func (r *TagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// Delete deletes a tag and its component associations in one transaction
func (r *TagRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.ComponentTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Tag{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
