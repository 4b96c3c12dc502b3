package models

import "github.com/google/uuid"

// HRAnalysis is an HR-authored assessment of a weekly report. A report can
// accumulate several analyses over time, each independently timestamped.
type HRAnalysis struct {
	BaseModel
	ReportID        uuid.UUID         `json:"report_id" gorm:"type:uuid;not null;index"`
	Summary         string            `json:"summary" gorm:"type:text" validate:"required"`
	Sentiment       AnalysisSentiment `json:"sentiment" gorm:"type:varchar(20);default:'neutral'"`
	Recommendations string            `json:"recommendations" gorm:"type:text"`
	AnalyzedBy      string            `json:"analyzed_by" gorm:"size:100"`
}

// TableName returns the table name for HRAnalysis
func (HRAnalysis) TableName() string {
	return "hr_analysis"
}
