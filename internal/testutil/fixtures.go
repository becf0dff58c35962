package testutil

import (
	"testing"
	"time"

	"sobi/internal/models"
	"sobi/internal/uuid"

	"gorm.io/gorm"
)

// NewTestUserID returns a fresh user ID. Users live in the identity
// provider, so tests only need a unique UUID.
func NewTestUserID() string {
	return uuid.New()
}

// CreateTestTransaction creates a transaction on the given date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, amount int64, category models.Category, date time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		UserID:        userID,
		Amount:        amount,
		Category:      category,
		Description:   "test transaction",
		PaymentMethod: models.PaymentMethodCard,
		Date:          date,
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}

// CreateTestBudget creates a budget for the given category and month.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID string, category models.Category, month string, amount int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Month:    month,
		Amount:   amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestInsight creates a stored insight expiring at the given time.
func CreateTestInsight(t *testing.T, db *gorm.DB, userID string, insightType models.InsightType, expiresAt *time.Time) *models.AIInsight {
	t.Helper()

	insight := &models.AIInsight{
		UserID:      userID,
		Type:        insightType,
		Severity:    models.InsightSeverityInfo,
		Title:       "test insight",
		Description: "test insight description",
		ExpiresAt:   expiresAt,
	}
	if err := db.Create(insight).Error; err != nil {
		t.Fatalf("failed to create test insight: %v", err)
	}
	return insight
}
