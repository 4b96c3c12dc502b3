package models

// VersionHistory is an append-only audit row written by the component
// repository on every create and update. It has no write API of its own.
type VersionHistory struct {
	BaseModel
	ComponentOwned
	Version   string `json:"version" gorm:"size:50"`
	Changes   string `json:"changes" gorm:"type:text"`
	ChangedBy string `json:"changed_by" gorm:"size:100"`
}

// TableName returns the table name for VersionHistory
func (VersionHistory) TableName() string {
	return "version_history"
}
