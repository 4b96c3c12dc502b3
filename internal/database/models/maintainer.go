package models

// Maintainer is a person responsible for a component
type Maintainer struct {
	BaseModel
	ComponentOwned
	Name  string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email string `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Role  string `json:"role" gorm:"size:100" validate:"max=100"`
}

// TableName returns the table name for Maintainer
func (Maintainer) TableName() string {
	return "maintainers"
}
