package services

import (
	"errors"
	"regexp"

	"gorm.io/gorm"

	apperrors "sobi/internal/errors"
	"sobi/internal/models"
)

// monthPattern matches YYYY-MM with a real month number.
var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// budgetService handles monthly budget business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// SetBudget creates or replaces the budget for (user, category, month).
// Setting an amount of zero clears the cap: downstream evaluation treats
// zero as "no budget set".
func (s *budgetService) SetBudget(userID string, category models.Category, month string, amount int64) (*models.Budget, error) {
	if !category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}
	if !monthPattern.MatchString(month) {
		return nil, apperrors.ErrInvalidMonth
	}
	if amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}

	var budget models.Budget
	err := s.db.Where("user_id = ? AND category = ? AND month = ?", userID, category, month).First(&budget).Error
	switch {
	case err == nil:
		if err := s.db.Model(&budget).Update("amount", amount).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &budget, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = models.Budget{
			UserID:   userID,
			Category: category,
			Month:    month,
			Amount:   amount,
		}
		if err := s.db.Create(&budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &budget, nil
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// GetMonthBudgets returns the user's budgets for one month in canonical
// category order. Categories without a stored budget are absent.
func (s *budgetService) GetMonthBudgets(userID, month string) ([]models.Budget, error) {
	if !monthPattern.MatchString(month) {
		return nil, apperrors.ErrInvalidMonth
	}

	var budgets []models.Budget
	if err := s.db.Where("user_id = ? AND month = ?", userID, month).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	ordered := make([]models.Budget, 0, len(budgets))
	for _, category := range models.Categories {
		for _, b := range budgets {
			if b.Category == category {
				ordered = append(ordered, b)
				break
			}
		}
	}
	return ordered, nil
}

// DeleteBudget removes a budget by ID if it belongs to the user. The delete
// is hard: a soft-deleted row would keep holding the (user, category, month)
// unique index and block setting that budget again.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	result := s.db.Unscoped().Where("id = ? AND user_id = ?", budgetID, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}
