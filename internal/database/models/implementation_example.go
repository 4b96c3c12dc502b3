package models

// ImplementationExample shows how a component is used in practice
type ImplementationExample struct {
	BaseModel
	ComponentOwned
	Title       string `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description string `json:"description" gorm:"type:text"`
	CodeSnippet string `json:"code_snippet" gorm:"type:text"`
	Language    string `json:"language" gorm:"size:50" validate:"max=50"`
}

// TableName returns the table name for ImplementationExample
func (ImplementationExample) TableName() string {
	return "implementation_examples"
}
