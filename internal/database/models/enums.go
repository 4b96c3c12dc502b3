package models

// ComponentStatus represents the lifecycle status of a component
type ComponentStatus string

const (
	ComponentStatusActive        ComponentStatus = "active"
	ComponentStatusDeprecated    ComponentStatus = "deprecated"
	ComponentStatusInDevelopment ComponentStatus = "in_development"
)

// Valid reports whether the value is one of the known statuses
func (s ComponentStatus) Valid() bool {
	switch s {
	case ComponentStatusActive, ComponentStatusDeprecated, ComponentStatusInDevelopment:
		return true
	}
	return false
}

// ComponentComplexity represents how involved adopting a component is
type ComponentComplexity string

const (
	ComplexityLow    ComponentComplexity = "low"
	ComplexityMedium ComponentComplexity = "medium"
	ComplexityHigh   ComponentComplexity = "high"
)

// Valid reports whether the value is one of the known complexities
func (c ComponentComplexity) Valid() bool {
	switch c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	}
	return false
}

// AnalysisSentiment represents the overall sentiment of an HR analysis
type AnalysisSentiment string

const (
	SentimentPositive AnalysisSentiment = "positive"
	SentimentNeutral  AnalysisSentiment = "neutral"
	SentimentNegative AnalysisSentiment = "negative"
)

// Valid reports whether the value is one of the known sentiments
func (s AnalysisSentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}
