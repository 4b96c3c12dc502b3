package models

import "time"

// UsageStatistic records adoption of a component by a consuming project
type UsageStatistic struct {
	BaseModel
	ComponentOwned
	ProjectName string     `json:"project_name" gorm:"not null;size:200" validate:"required,max=200"`
	UsageCount  int        `json:"usage_count" gorm:"not null;default:0" validate:"min=0"`
	LastUsedAt  *time.Time `json:"last_used_at"`
}

// TableName returns the table name for UsageStatistic
func (UsageStatistic) TableName() string {
	return "usage_statistics"
}
