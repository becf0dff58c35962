package analytics

import (
	"sobi/internal/models"
)

// Totals rolls up the budget overview across all categories.
type Totals struct {
	TotalBudget    int64 `json:"total_budget"`
	TotalSpent     int64 `json:"total_spent"`
	TotalRemaining int64 `json:"total_remaining"`
}

// ComputeTotals sums budget and spend across evaluated statuses.
// TotalRemaining is signed: negative means over budget, and callers decide
// how to present that.
func ComputeTotals(statuses []BudgetStatus) Totals {
	var t Totals
	for _, s := range statuses {
		t.TotalBudget += s.Budget
		t.TotalSpent += s.Spent
	}
	t.TotalRemaining = t.TotalBudget - t.TotalSpent
	return t
}

// Summary is the headline spending card for a window of transactions.
type Summary struct {
	TotalSpent      int64   `json:"total_spent"`
	BudgetRemaining int64   `json:"budget_remaining"`
	PercentageUsed  float64 `json:"percentage_used"`
}

// ComputeSummary totals the given transactions against an overall budget.
// With no budget configured (totalBudget == 0) BudgetRemaining is exactly
// -TotalSpent; callers rely on that sign to tell "no budget set" apart from
// "under budget". PercentageUsed is 0 when there is no budget, never
// NaN or Inf.
func ComputeSummary(txns []models.Transaction, totalBudget int64) Summary {
	var spent int64
	for _, t := range txns {
		spent += t.Amount
	}

	var percentage float64
	if totalBudget > 0 {
		percentage = float64(spent) / float64(totalBudget) * 100
	}

	return Summary{
		TotalSpent:      spent,
		BudgetRemaining: totalBudget - spent,
		PercentageUsed:  percentage,
	}
}
