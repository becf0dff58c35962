package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sobi/internal/analytics"
	apperrors "sobi/internal/errors"
	"sobi/internal/logger"
	"sobi/internal/ml"
	"sobi/internal/models"
)

const (
	// insightTTL is how long a generated insight stays visible before it
	// is considered stale.
	insightTTL = 7 * 24 * time.Hour

	// insightReadLimit caps how many stored insights a single overview
	// read returns.
	insightReadLimit = 20
)

// insightService generates insights through the external ML service and
// stores them for later reads.
type insightService struct {
	db     *gorm.DB
	client *ml.Client
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(db *gorm.DB, client *ml.Client) InsightServicer {
	return &insightService{db: db, client: client}
}

// GenerateInsights ships the user's full spending snapshot plus the current
// month's budgets to the insight service and persists whatever comes back,
// stamped with an expiry.
func (s *insightService) GenerateInsights(ctx context.Context, userID string, now time.Time) ([]models.AIInsight, error) {
	var txns []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Order("date ASC").Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(txns) == 0 {
		return nil, apperrors.ErrNoTransactions
	}

	month := now.Format("2006-01")
	var budgets []models.Budget
	if err := s.db.Where("user_id = ? AND month = ?", userID, month).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	request := ml.InsightRequest{
		UserID:       userID,
		Transactions: make([]ml.TransactionRecord, 0, len(txns)),
	}
	for _, t := range txns {
		request.Transactions = append(request.Transactions, ml.TransactionRecord{
			Date:        t.Date.Format("2006-01-02"),
			Amount:      t.Amount,
			Category:    string(t.Category),
			Description: t.Description,
		})
	}
	if len(budgets) > 0 {
		request.CurrentMonthBudget = make(map[string]int64, len(budgets))
		for _, b := range budgets {
			request.CurrentMonthBudget[string(b.Category)] = b.Amount
		}
	}

	response, err := s.client.GenerateInsights(ctx, request)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInsightServiceUnavailable, err)
	}

	expiresAt := now.Add(insightTTL)
	insights := make([]models.AIInsight, 0, len(response.Insights))
	for _, record := range response.Insights {
		insights = append(insights, models.AIInsight{
			UserID:           userID,
			Type:             models.InsightType(record.Type),
			Severity:         models.InsightSeverity(record.Severity),
			Title:            record.Title,
			Description:      record.Description,
			SuggestedAction:  record.SuggestedAction,
			PotentialSavings: record.PotentialSavings,
			Category:         record.Category,
			ExpiresAt:        &expiresAt,
		})
	}
	if len(insights) == 0 {
		return []models.AIInsight{}, nil
	}

	if err := s.db.Create(&insights).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("stored generated insights",
		"user_id", userID,
		"count", len(insights),
	)
	return insights, nil
}

// GetInsightOverview reads the user's non-expired insights, newest first,
// and classifies them into display views.
func (s *insightService) GetInsightOverview(userID string, now time.Time) (*analytics.InsightSummary, error) {
	var insights []models.AIInsight
	err := s.db.
		Where("user_id = ? AND (expires_at IS NULL OR expires_at > ?)", userID, now).
		Order("created_at DESC").
		Limit(insightReadLimit).
		Find(&insights).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := analytics.ClassifyInsights(insights)
	return &summary, nil
}
