package analytics

import (
	"sort"
	"time"

	"sobi/internal/models"
)

// CategoryBucket is the total spend for one category within a window.
type CategoryBucket struct {
	Category models.Category `json:"category"`
	Amount   int64           `json:"amount"`
	Label    string          `json:"label"`
}

// AggregateByCategory sums transaction amounts per category for dates the
// include predicate accepts (nil includes everything). Categories with no
// activity are omitted rather than zero-filled, so pie charts never show
// empty wedges. Output is sorted by amount descending; equal amounts keep
// the canonical category order.
func AggregateByCategory(txns []models.Transaction, include func(time.Time) bool) []CategoryBucket {
	totals := make(map[models.Category]int64)
	for _, t := range txns {
		if include != nil && !include(t.Date) {
			continue
		}
		totals[t.Category] += t.Amount
	}

	// Build in canonical order so the stable sort below yields a
	// deterministic tie-break.
	out := make([]CategoryBucket, 0, len(totals))
	for _, c := range models.Categories {
		if amount, ok := totals[c]; ok {
			out = append(out, CategoryBucket{Category: c, Amount: amount, Label: c.Label()})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out
}

// LastNDays accepts dates within the n calendar days ending at ref
// (today counts as day zero).
func LastNDays(ref time.Time, n int) func(time.Time) bool {
	return func(d time.Time) bool {
		return daysBetween(ref, d) < n
	}
}

// LastNMonths accepts dates within the n calendar months ending at ref's
// month.
func LastNMonths(ref time.Time, n int) func(time.Time) bool {
	return func(d time.Time) bool {
		monthDiff := (ref.Year()-d.Year())*12 + int(ref.Month()) - int(d.Month())
		return monthDiff < n
	}
}

// InMonth accepts dates falling inside the given YYYY-MM month.
func InMonth(month string) func(time.Time) bool {
	return func(d time.Time) bool {
		return d.Format("2006-01") == month
	}
}

// WindowForMode returns the category-breakdown window matching a trend
// mode: 7 days for daily, 28 days (4 weeks) for weekly, 4 calendar months
// for monthly.
func WindowForMode(mode ViewMode, ref time.Time) func(time.Time) bool {
	switch mode {
	case ViewModeWeekly:
		return LastNDays(ref, 28)
	case ViewModeMonthly:
		return LastNMonths(ref, 4)
	default:
		return LastNDays(ref, 7)
	}
}
