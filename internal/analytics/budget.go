package analytics

import (
	"sobi/internal/models"
)

// Severity classifies how urgently a budget requires attention.
type Severity string

const (
	SeverityNone    Severity = "none"    // no budget configured
	SeveritySuccess Severity = "success" // under 80% used
	SeverityWarning Severity = "warning" // 80% or more used
	SeverityDanger  Severity = "danger"  // 100% or more used
)

// BudgetStatus is the evaluated state of one category's budget for a month.
type BudgetStatus struct {
	Category   models.Category `json:"category"`
	Budget     int64           `json:"budget"`
	Spent      int64           `json:"spent"`
	Remaining  int64           `json:"remaining"`
	Percentage float64         `json:"percentage"`
	Severity   Severity        `json:"severity"`
}

// EvaluateBudgets combines budget allocations with actual spend for the
// given YYYY-MM month. The result always contains one entry per category in
// canonical order, whether or not an allocation exists, so settings and
// summary views are complete. An absent allocation (or an explicit zero) is
// "no cap set": percentage stays 0 and severity is none.
func EvaluateBudgets(budgets []models.Budget, txns []models.Transaction, month string) []BudgetStatus {
	allocated := make(map[models.Category]int64, len(budgets))
	for _, b := range budgets {
		if b.Month == month {
			allocated[b.Category] = b.Amount
		}
	}

	spent := make(map[models.Category]int64)
	inMonth := InMonth(month)
	for _, t := range txns {
		if inMonth(t.Date) {
			spent[t.Category] += t.Amount
		}
	}

	statuses := make([]BudgetStatus, 0, len(models.Categories))
	for _, c := range models.Categories {
		budget := allocated[c]
		used := spent[c]

		var percentage float64
		if budget > 0 {
			percentage = float64(used) / float64(budget) * 100
		}

		statuses = append(statuses, BudgetStatus{
			Category:   c,
			Budget:     budget,
			Spent:      used,
			Remaining:  budget - used,
			Percentage: percentage,
			Severity:   classifySeverity(budget, percentage),
		})
	}
	return statuses
}

// classifySeverity applies the fixed threshold table. First match wins;
// the 80 and 100 boundaries belong to the higher severity.
func classifySeverity(budget int64, percentage float64) Severity {
	switch {
	case budget == 0:
		return SeverityNone
	case percentage >= 100:
		return SeverityDanger
	case percentage >= 80:
		return SeverityWarning
	default:
		return SeveritySuccess
	}
}
