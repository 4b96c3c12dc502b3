package models

import "github.com/google/uuid"

// PeerEvaluation is one peer's rating of another for a given report.
// The (report, evaluator, evaluatee) triple is unique; the rating is
// bounded to [1,5] at the service boundary.
type PeerEvaluation struct {
	BaseModel
	ReportID    uuid.UUID `json:"report_id" gorm:"type:uuid;not null;uniqueIndex:idx_evaluations_report_pair"`
	EvaluatorID uuid.UUID `json:"evaluator_id" gorm:"type:uuid;not null;uniqueIndex:idx_evaluations_report_pair"`
	EvaluateeID uuid.UUID `json:"evaluatee_id" gorm:"type:uuid;not null;uniqueIndex:idx_evaluations_report_pair"`
	Rating      int       `json:"rating" gorm:"not null"`
	Comments    string    `json:"comments" gorm:"type:text"`

	Evaluator *TeamMember `json:"evaluator,omitempty" gorm:"foreignKey:EvaluatorID"`
	Evaluatee *TeamMember `json:"evaluatee,omitempty" gorm:"foreignKey:EvaluateeID"`
}

// TableName returns the table name for PeerEvaluation
func (PeerEvaluation) TableName() string {
	return "peer_evaluations"
}
