package models

// Feature is a single capability a component provides
type Feature struct {
	BaseModel
	ComponentOwned
	Name        string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName returns the table name for Feature
func (Feature) TableName() string {
	return "features"
}
