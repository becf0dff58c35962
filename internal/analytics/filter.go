package analytics

import (
	"strings"
	"time"

	"sobi/internal/models"
)

// CategoryAll is the pass-through sentinel for the category filter.
const CategoryAll = "all"

// Recognized rolling-period keys for the transaction list filter.
var periodDays = map[string]int{
	"week":    7,
	"month":   30,
	"quarter": 90,
	"year":    365,
}

// defaultPeriodDays applies when the period key is empty or unrecognized.
// Unknown keys are not an error; the filter degrades to the default window.
const defaultPeriodDays = 30

// PeriodDays maps a period key to its rolling window length in days.
func PeriodDays(key string) int {
	if days, ok := periodDays[key]; ok {
		return days
	}
	return defaultPeriodDays
}

// TransactionQuery holds the user-supplied transaction list filters. All
// filters are conjunctive.
type TransactionQuery struct {
	Search   string `form:"q"`
	Category string `form:"category"`
	Period   string `form:"period"`
}

// FilterTransactions applies free-text search, category, and rolling-period
// filters relative to ref. Search matches case-insensitively against
// description or merchant; an empty search matches everything, as does the
// "all" category sentinel. A transaction is in the period when ref minus
// its date, in whole days, is at most the period length.
func FilterTransactions(txns []models.Transaction, q TransactionQuery, ref time.Time) []models.Transaction {
	search := strings.ToLower(q.Search)
	days := PeriodDays(q.Period)

	filtered := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Description), search) &&
			!strings.Contains(strings.ToLower(t.Merchant), search) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && string(t.Category) != q.Category {
			continue
		}
		if daysBetween(ref, t.Date) > days {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// Stats summarizes a filtered transaction list.
type Stats struct {
	Count   int     `json:"count"`
	Total   int64   `json:"total"`
	Average float64 `json:"average"`
}

// ComputeStats returns count, total, and average amount. The average of an
// empty list is 0, never a division error.
func ComputeStats(txns []models.Transaction) Stats {
	stats := Stats{Count: len(txns)}
	for _, t := range txns {
		stats.Total += t.Amount
	}
	if stats.Count > 0 {
		stats.Average = float64(stats.Total) / float64(stats.Count)
	}
	return stats
}
