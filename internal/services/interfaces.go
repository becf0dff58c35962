// Package services contains the business logic layer. Services load
// per-user snapshots from the database, validate them at the boundary, and
// delegate all derivation to the pure analytics package.
package services

import (
	"context"
	"time"

	"sobi/internal/analytics"
	"sobi/internal/models"
	"sobi/internal/pagination"
)

// TransactionUpdate holds the optional fields of a transaction update.
// Nil pointers leave the stored value unchanged.
type TransactionUpdate struct {
	Amount        *int64
	Category      *models.Category
	Description   *string
	Merchant      *string
	PaymentMethod *models.PaymentMethod
	Date          *time.Time
}

// SearchResult pairs a filtered transaction list with its summary stats.
type SearchResult struct {
	Transactions []models.Transaction `json:"transactions"`
	Stats        analytics.Stats      `json:"stats"`
}

// TransactionServicer defines the interface for transaction operations.
type TransactionServicer interface {
	CreateTransaction(userID string, amount int64, category models.Category, description, merchant string, method models.PaymentMethod, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	SearchTransactions(userID string, query analytics.TransactionQuery, ref time.Time) (*SearchResult, error)
}

// BudgetServicer defines the interface for monthly budget operations.
type BudgetServicer interface {
	SetBudget(userID string, category models.Category, month string, amount int64) (*models.Budget, error)
	GetMonthBudgets(userID, month string) ([]models.Budget, error)
	DeleteBudget(userID, budgetID string) error
}

// TrendReport is the spending-over-time dashboard payload.
type TrendReport struct {
	Mode     analytics.ViewMode              `json:"mode"`
	Buckets  []analytics.TimeBucket          `json:"buckets"`
	Rejected []analytics.RejectedTransaction `json:"rejected,omitempty"`
}

// CategoryReport is the per-category breakdown dashboard payload.
type CategoryReport struct {
	Mode     analytics.ViewMode              `json:"mode"`
	Buckets  []analytics.CategoryBucket      `json:"buckets"`
	Rejected []analytics.RejectedTransaction `json:"rejected,omitempty"`
}

// BudgetOverview is the per-category budget status payload for one month.
type BudgetOverview struct {
	Month    string                          `json:"month"`
	Statuses []analytics.BudgetStatus        `json:"statuses"`
	Totals   analytics.Totals                `json:"totals"`
	Rejected []analytics.RejectedTransaction `json:"rejected,omitempty"`
}

// SummaryReport is the headline monthly summary payload.
type SummaryReport struct {
	Month    string                          `json:"month"`
	Summary  analytics.Summary               `json:"summary"`
	Rejected []analytics.RejectedTransaction `json:"rejected,omitempty"`
}

// AnalyticsServicer defines the interface for dashboard derivations.
type AnalyticsServicer interface {
	GetSpendingTrend(userID string, mode analytics.ViewMode, ref time.Time) (*TrendReport, error)
	GetCategoryBreakdown(userID string, mode analytics.ViewMode, ref time.Time) (*CategoryReport, error)
	GetBudgetOverview(userID, month string) (*BudgetOverview, error)
	GetMonthlySummary(userID, month string) (*SummaryReport, error)
}

// InsightServicer defines the interface for AI insight operations.
type InsightServicer interface {
	GenerateInsights(ctx context.Context, userID string, now time.Time) ([]models.AIInsight, error)
	GetInsightOverview(userID string, now time.Time) (*analytics.InsightSummary, error)
}
