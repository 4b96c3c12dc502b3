package models

// Category is a classification bucket for components
type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text"`

	// Deleting a category is blocked while components still reference it
	Components []Component `json:"components,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}
