package services

import (
	"time"

	"gorm.io/gorm"

	"sobi/internal/analytics"
	apperrors "sobi/internal/errors"
	"sobi/internal/logger"
	"sobi/internal/models"
)

// analyticsService derives dashboard views from stored transactions and
// budgets. It owns no arithmetic of its own: it loads snapshots, screens
// them, and hands them to the analytics package.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// loadSnapshot loads every live transaction for the user and screens out
// malformed rows. Rejects are reported, never silently dropped.
func (s *analyticsService) loadSnapshot(userID string) ([]models.Transaction, []analytics.RejectedTransaction, error) {
	var txns []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Order("date ASC").Find(&txns).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	valid, rejected := analytics.ValidateTransactions(txns)
	if len(rejected) > 0 {
		logger.Get().Warnw("rejected malformed transactions from snapshot",
			"user_id", userID,
			"rejected", len(rejected),
		)
	}
	return valid, rejected, nil
}

// GetSpendingTrend returns zero-filled time buckets for the requested view
// mode, anchored at ref.
func (s *analyticsService) GetSpendingTrend(userID string, mode analytics.ViewMode, ref time.Time) (*TrendReport, error) {
	if !mode.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown view mode")
	}

	txns, rejected, err := s.loadSnapshot(userID)
	if err != nil {
		return nil, err
	}

	return &TrendReport{
		Mode:     mode,
		Buckets:  analytics.Bucketize(txns, mode, ref),
		Rejected: rejected,
	}, nil
}

// GetCategoryBreakdown returns per-category totals over the window implied
// by the view mode, largest first.
func (s *analyticsService) GetCategoryBreakdown(userID string, mode analytics.ViewMode, ref time.Time) (*CategoryReport, error) {
	if !mode.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown view mode")
	}

	txns, rejected, err := s.loadSnapshot(userID)
	if err != nil {
		return nil, err
	}

	return &CategoryReport{
		Mode:     mode,
		Buckets:  analytics.AggregateByCategory(txns, analytics.WindowForMode(mode, ref)),
		Rejected: rejected,
	}, nil
}

// GetBudgetOverview returns a status for every category in the given month
// plus overall totals.
func (s *analyticsService) GetBudgetOverview(userID, month string) (*BudgetOverview, error) {
	if !monthPattern.MatchString(month) {
		return nil, apperrors.ErrInvalidMonth
	}

	var budgets []models.Budget
	if err := s.db.Where("user_id = ? AND month = ?", userID, month).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	txns, rejected, err := s.loadSnapshot(userID)
	if err != nil {
		return nil, err
	}

	statuses := analytics.EvaluateBudgets(budgets, txns, month)
	return &BudgetOverview{
		Month:    month,
		Statuses: statuses,
		Totals:   analytics.ComputeTotals(statuses),
		Rejected: rejected,
	}, nil
}

// GetMonthlySummary returns the headline spent/remaining/percentage figures
// for one month.
func (s *analyticsService) GetMonthlySummary(userID, month string) (*SummaryReport, error) {
	if !monthPattern.MatchString(month) {
		return nil, apperrors.ErrInvalidMonth
	}

	var budgets []models.Budget
	if err := s.db.Where("user_id = ? AND month = ?", userID, month).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var totalBudget int64
	for _, b := range budgets {
		totalBudget += b.Amount
	}

	txns, rejected, err := s.loadSnapshot(userID)
	if err != nil {
		return nil, err
	}

	inMonth := analytics.InMonth(month)
	monthTxns := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if inMonth(t.Date) {
			monthTxns = append(monthTxns, t)
		}
	}

	return &SummaryReport{
		Month:    month,
		Summary:  analytics.ComputeSummary(monthTxns, totalBudget),
		Rejected: rejected,
	}, nil
}
