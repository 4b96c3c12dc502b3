package models

// TechnicalSpecification is a single named spec fact about a component
type TechnicalSpecification struct {
	BaseModel
	ComponentOwned
	SpecName  string `json:"spec_name" gorm:"not null;size:200" validate:"required,max=200"`
	SpecValue string `json:"spec_value" gorm:"type:text" validate:"required"`
}

// TableName returns the table name for TechnicalSpecification
func (TechnicalSpecification) TableName() string {
	return "technical_specifications"
}
