package models

// BusinessValueMetric quantifies the business impact of a component
type BusinessValueMetric struct {
	BaseModel
	ComponentOwned
	MetricName  string `json:"metric_name" gorm:"not null;size:200" validate:"required,max=200"`
	MetricValue string `json:"metric_value" gorm:"not null;size:200" validate:"required,max=200"`
	Notes       string `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for BusinessValueMetric
func (BusinessValueMetric) TableName() string {
	return "business_value_metrics"
}
