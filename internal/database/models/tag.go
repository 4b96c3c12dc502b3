package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a free-form label attached to components via the component_tags
// junction table
type Tag struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`

	Components []Component `json:"components,omitempty" gorm:"many2many:component_tags;"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// ComponentTag is the join record between components and tags. The composite
// primary key makes duplicate attaches a no-op at the storage level.
type ComponentTag struct {
	ComponentID uuid.UUID `json:"component_id" gorm:"type:uuid;primaryKey"`
	TagID       uuid.UUID `json:"tag_id" gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for ComponentTag
func (ComponentTag) TableName() string {
	return "component_tags"
}
