package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys.
// CreatedAt/UpdatedAt are maintained by GORM inside the same INSERT/UPDATE
// statement as the mutation itself.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// GetID returns the row's primary key
func (base *BaseModel) GetID() uuid.UUID { return base.ID }

// SetID assigns the row's primary key
func (base *BaseModel) SetID(id uuid.UUID) { base.ID = id }

// GetCreatedAt returns the row's creation timestamp
func (base *BaseModel) GetCreatedAt() time.Time { return base.CreatedAt }

// SetCreatedAt assigns the row's creation timestamp. Used when a full-row
// save must preserve the original creation time.
func (base *BaseModel) SetCreatedAt(t time.Time) { base.CreatedAt = t }

// ComponentOwned is embedded by every detail row that belongs to exactly one
// component. Rows are cascade-deleted with their component.
type ComponentOwned struct {
	ComponentID uuid.UUID `json:"component_id" gorm:"type:uuid;not null;index"`
}

// SetComponentID assigns the owning component
func (o *ComponentOwned) SetComponentID(id uuid.UUID) { o.ComponentID = id }

// GetComponentID returns the owning component
func (o *ComponentOwned) GetComponentID() uuid.UUID { return o.ComponentID }
