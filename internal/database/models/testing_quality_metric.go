package models

import "time"

// TestingQualityMetric is a measured quality fact about a component
type TestingQualityMetric struct {
	BaseModel
	ComponentOwned
	MetricName  string     `json:"metric_name" gorm:"not null;size:200" validate:"required,max=200"`
	MetricValue string     `json:"metric_value" gorm:"not null;size:200" validate:"required,max=200"`
	MeasuredAt  *time.Time `json:"measured_at"`
}

// TableName returns the table name for TestingQualityMetric
func (TestingQualityMetric) TableName() string {
	return "testing_quality_metrics"
}
