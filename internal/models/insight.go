package models

import "time"

// InsightType identifies what kind of observation an insight carries.
// Values mirror the generation service's vocabulary.
type InsightType string

const (
	InsightTypeSavingsOpportunity InsightType = "savings_opportunity"
	InsightTypeOverspending       InsightType = "overspending"
	InsightTypeTrendIncrease      InsightType = "trend_increase"
	InsightTypeTrendDecrease      InsightType = "trend_decrease"
	InsightTypeCategoryWarning    InsightType = "category_warning"
	InsightTypeSpendingPersona    InsightType = "spending_persona"
)

// InsightSeverity grades how urgently an insight needs attention.
type InsightSeverity string

const (
	InsightSeverityInfo     InsightSeverity = "info"
	InsightSeverityWarning  InsightSeverity = "warning"
	InsightSeverityCritical InsightSeverity = "critical"
)

// AIInsight is a stored insight produced by the generation service.
// Insights go stale as new transactions arrive, so each row carries an
// expiry; expired rows are excluded from reads but kept for history.
type AIInsight struct {
	Base
	UserID           string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type             InsightType     `gorm:"not null" json:"type"`
	Severity         InsightSeverity `gorm:"not null" json:"severity"`
	Title            string          `gorm:"not null" json:"title"`
	Description      string          `gorm:"not null" json:"description"`
	SuggestedAction  string          `json:"suggested_action,omitempty"`
	PotentialSavings *int64          `gorm:"type:bigint" json:"potential_savings,omitempty"`
	Category         string          `json:"category,omitempty"`
	ExpiresAt        *time.Time      `json:"expires_at,omitempty"`
}
