package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Report is one team member's weekly progress submission. A member can file
// at most one report per ISO week/year pair.
type Report struct {
	BaseModel
	TeamMemberID uuid.UUID `json:"team_member_id" gorm:"type:uuid;not null;uniqueIndex:idx_reports_member_week_year"`
	WeekNumber   int       `json:"week_number" gorm:"not null;uniqueIndex:idx_reports_member_week_year"`
	Year         int       `json:"year" gorm:"not null;uniqueIndex:idx_reports_member_week_year"`

	CompletedTasks json.RawMessage `json:"completed_tasks" gorm:"type:jsonb"`
	PendingTasks   json.RawMessage `json:"pending_tasks" gorm:"type:jsonb"`
	DroppedTasks   json.RawMessage `json:"dropped_tasks" gorm:"type:jsonb"`
	Projects       json.RawMessage `json:"projects" gorm:"type:jsonb"`

	ProductivityRating      int             `json:"productivity_rating"`
	ProductivitySuggestions json.RawMessage `json:"productivity_suggestions" gorm:"type:jsonb"`
	ProductivityDetails     string          `json:"productivity_details" gorm:"type:text"`
	ProductiveTime          string          `json:"productive_time" gorm:"size:100"`
	ProductivePlace         string          `json:"productive_place" gorm:"size:100"`

	// Relationships
	TeamMember      *TeamMember      `json:"team_member,omitempty" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE"`
	HRAnalyses      []HRAnalysis     `json:"hr_analyses,omitempty" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
	PeerEvaluations []PeerEvaluation `json:"peer_evaluations,omitempty" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Report
func (Report) TableName() string {
	return "reports"
}
