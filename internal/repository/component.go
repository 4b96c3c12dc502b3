package repository

import (
	"component-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ComponentRepository handles database operations for components
type ComponentRepository struct {
	db *gorm.DB
}

// Ensure ComponentRepository implements ComponentRepositoryInterface
var _ ComponentRepositoryInterface = (*ComponentRepository)(nil)

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// Create inserts a component, its initial version-history row and its tag
// associations in one transaction, so a failure on any of them leaves no
// component behind
func (r *ComponentRepository) Create(component *models.Component, history *models.VersionHistory, tagIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(component).Error; err != nil {
			return err
		}
		if history != nil {
			history.ComponentID = component.ID
			if err := tx.Create(history).Error; err != nil {
				return err
			}
		}
		for _, tagID := range tagIDs {
			association := models.ComponentTag{ComponentID: component.ID, TagID: tagID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&association).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a component with its category and tags preloaded
func (r *ComponentRepository) GetByID(id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.Preload("Category").Preload("Tags").First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetByName retrieves a component by its unique name
func (r *ComponentRepository) GetByName(name string) (*models.Component, error) {
	var component models.Component
	err := r.db.First(&component, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// List retrieves components matching the filter with pagination
func (r *ComponentRepository) List(filter ComponentFilter, limit, offset int) ([]models.Component, int64, error) {
	var components []models.Component
	var total int64

	query := r.db.Model(&models.Component{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Archived != nil {
		query = query.Where("is_archived = ?", *filter.Archived)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Tag != "" {
		query = query.
			Joins("JOIN component_tags ct ON ct.component_id = components.id").
			Joins("JOIN tags t ON t.id = ct.tag_id").
			Where("t.name = ?", filter.Tag)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Tags").Limit(limit).Offset(offset).Order("components.name ASC").Find(&components).Error
	if err != nil {
		return nil, 0, err
	}

	return components, total, nil
}

// Update saves a component and appends a version-history row in one
// transaction. GORM writes the refreshed updated_at inside the same UPDATE
// statement.
func (r *ComponentRepository) Update(component *models.Component, history *models.VersionHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Category").Save(component).Error; err != nil {
			return err
		}
		if history != nil {
			history.ComponentID = component.ID
			if err := tx.Create(history).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SetArchived toggles the soft-archive flag
func (r *ComponentRepository) SetArchived(id uuid.UUID, archived bool) error {
	result := r.db.Model(&models.Component{}).Where("id = ?", id).Update("is_archived", archived)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// componentChildren lists every detail table owned by a component, deleted
// ahead of the parent row
var componentChildren = []interface{}{
	&models.TechnicalSpecification{},
	&models.Feature{},
	&models.ImplementationExample{},
	&models.SampleApplication{},
	&models.VersionHistory{},
	&models.UsageStatistic{},
	&models.ComponentFile{},
	&models.TestingQualityMetric{},
	&models.BusinessValueMetric{},
	&models.Maintainer{},
}

// Delete removes a component, all its detail rows and its tag associations
// as one atomic operation. Children go first so the delete also holds on
// engines without native cascading foreign keys.
func (r *ComponentRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, child := range componentChildren {
			if err := tx.Where("component_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("component_id = ?", id).Delete(&models.ComponentTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Component{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// AttachTag links a tag to a component. Attaching an already-attached tag
// is a no-op thanks to the composite primary key.
func (r *ComponentRepository) AttachTag(componentID, tagID uuid.UUID) error {
	association := models.ComponentTag{ComponentID: componentID, TagID: tagID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&association).Error
}

// DetachTag removes exactly one association row, reporting not-found when
// no such association exists
func (r *ComponentRepository) DetachTag(componentID, tagID uuid.UUID) error {
	result := r.db.Where("component_id = ? AND tag_id = ?", componentID, tagID).Delete(&models.ComponentTag{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists checks if a component exists by ID
func (r *ComponentRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Component{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
