package models

// SampleApplication is a runnable application demonstrating a component
type SampleApplication struct {
	BaseModel
	ComponentOwned
	Name        string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string `json:"description" gorm:"type:text"`
	URL         string `json:"url" gorm:"size:500" validate:"omitempty,url,max=500"`
}

// TableName returns the table name for SampleApplication
func (SampleApplication) TableName() string {
	return "sample_applications"
}
