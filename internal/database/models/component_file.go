package models

// ComponentFile records an attachment stored by the external file-storage
// collaborator. FilePath is the identifier that collaborator handed back.
type ComponentFile struct {
	BaseModel
	ComponentOwned
	FileName   string `json:"file_name" gorm:"not null;size:255" validate:"required,max=255"`
	FilePath   string `json:"file_path" gorm:"not null;size:500" validate:"required,max=500"`
	FileType   string `json:"file_type" gorm:"size:100" validate:"max=100"`
	FileSize   int64  `json:"file_size" validate:"min=0"`
	UploadedBy string `json:"uploaded_by" gorm:"size:100"`
}

// TableName returns the table name for ComponentFile
func (ComponentFile) TableName() string {
	return "component_files"
}
