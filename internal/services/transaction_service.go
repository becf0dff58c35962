package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"sobi/internal/analytics"
	apperrors "sobi/internal/errors"
	"sobi/internal/models"
	"sobi/internal/pagination"
)

// transactionService handles spending record business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a new spending event. Refunds are out of scope,
// so negative amounts are rejected; zero-amount records are allowed.
func (s *transactionService) CreateTransaction(
	userID string,
	amount int64,
	category models.Category,
	description, merchant string,
	method models.PaymentMethod,
	date time.Time,
) (*models.Transaction, error) {
	if amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	if !category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}
	if !method.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown payment method")
	}
	if date.IsZero() {
		date = time.Now()
	}

	txn := &models.Transaction{
		UserID:        userID,
		Amount:        amount,
		Category:      category,
		Description:   description,
		Merchant:      merchant,
		PaymentMethod: method,
		Date:          date,
	}

	if err := s.db.Create(txn).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return txn, nil
}

// GetUserTransactions returns the user's transactions newest first, paginated.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txns []models.Transaction
	if err := base.Order("date DESC, created_at DESC").Scopes(pagination.Paginate(page)).Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(txns, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTransactionByID returns a transaction by ID if it belongs to the user.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var txn models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &txn, nil
}

// UpdateTransaction updates the provided fields of an existing transaction.
func (s *transactionService) UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error) {
	txn, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Amount != nil {
		if *update.Amount < 0 {
			return nil, apperrors.ErrNegativeAmount
		}
		updates["amount"] = *update.Amount
	}
	if update.Category != nil {
		if !update.Category.IsValid() {
			return nil, apperrors.ErrInvalidCategory
		}
		updates["category"] = *update.Category
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Merchant != nil {
		updates["merchant"] = *update.Merchant
	}
	if update.PaymentMethod != nil {
		if !update.PaymentMethod.IsValid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown payment method")
		}
		updates["payment_method"] = *update.PaymentMethod
	}
	if update.Date != nil {
		if update.Date.IsZero() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Date must not be empty")
		}
		updates["date"] = *update.Date
	}

	if len(updates) == 0 {
		return txn, nil
	}

	if err := s.db.Model(txn).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return txn, nil
}

// DeleteTransaction soft-deletes a transaction. Deleted records drop out of
// every listing and aggregate immediately.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	result := s.db.Where("id = ? AND user_id = ?", transactionID, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// SearchTransactions filters the user's transactions by text, category, and
// recency, and computes stats over the matches. Matches come back newest
// first.
func (s *transactionService) SearchTransactions(userID string, query analytics.TransactionQuery, ref time.Time) (*SearchResult, error) {
	var txns []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Order("date DESC, created_at DESC").Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	matched := analytics.FilterTransactions(txns, query, ref)
	return &SearchResult{
		Transactions: matched,
		Stats:        analytics.ComputeStats(matched),
	}, nil
}
