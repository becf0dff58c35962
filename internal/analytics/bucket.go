// Package analytics derives dashboard aggregates from in-memory snapshots
// of a user's transactions, budgets, and AI insights. Every function here is
// pure: no I/O, no clock reads (the reference "now" is always a parameter),
// no mutation of inputs, and deterministic output for identical inputs.
// Callers load snapshots from the repository layer and recompute on change.
package analytics

import (
	"fmt"
	"time"

	"sobi/internal/models"
)

// ViewMode selects the bucket granularity for trend charts.
type ViewMode string

const (
	ViewModeDaily   ViewMode = "daily"
	ViewModeWeekly  ViewMode = "weekly"
	ViewModeMonthly ViewMode = "monthly"
)

// IsValid reports whether m is a known view mode.
func (m ViewMode) IsValid() bool {
	switch m {
	case ViewModeDaily, ViewModeWeekly, ViewModeMonthly:
		return true
	}
	return false
}

// TimeBucket is one calendar-aligned slot of a trend series. Date is the
// bucket key (YYYY-MM-DD for daily/weekly, YYYY-MM for monthly). Label is a
// display hint only; chart contracts are amount and ordering.
type TimeBucket struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
	Label  string `json:"label"`
}

// Fixed window lengths per mode: charts always render the same number of
// buckets regardless of how sparse the data is.
const (
	dailyBuckets   = 7
	weeklyBuckets  = 4
	monthlyBuckets = 4
)

// Bucketize groups transactions into calendar-aligned buckets relative to
// ref: the last 7 days, the last 4 weeks (weeks start on Sunday), or the
// last 4 calendar months. Every bucket in the window is present and
// zero-filled; transactions outside the window are silently dropped, which
// is expected for older history. Buckets are ordered oldest first.
func Bucketize(txns []models.Transaction, mode ViewMode, ref time.Time) []TimeBucket {
	buckets := emptyBuckets(mode, ref)

	totals := make(map[string]int64, len(buckets))
	for i := range buckets {
		totals[buckets[i].Date] = 0
	}

	for _, t := range txns {
		key := bucketKey(mode, t.Date)
		if _, ok := totals[key]; ok {
			totals[key] += t.Amount
		}
	}

	for i := range buckets {
		buckets[i].Amount = totals[buckets[i].Date]
	}
	return buckets
}

// emptyBuckets pre-creates the zero-filled window for a mode, oldest first.
func emptyBuckets(mode ViewMode, ref time.Time) []TimeBucket {
	switch mode {
	case ViewModeWeekly:
		start := weekStart(ref)
		buckets := make([]TimeBucket, 0, weeklyBuckets)
		for i := weeklyBuckets - 1; i >= 0; i-- {
			d := start.AddDate(0, 0, -i*7)
			buckets = append(buckets, TimeBucket{Date: d.Format("2006-01-02"), Label: weekLabel(i)})
		}
		return buckets

	case ViewModeMonthly:
		buckets := make([]TimeBucket, 0, monthlyBuckets)
		for i := monthlyBuckets - 1; i >= 0; i-- {
			d := time.Date(ref.Year(), ref.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
			buckets = append(buckets, TimeBucket{Date: d.Format("2006-01"), Label: fmt.Sprintf("%d월", int(d.Month()))})
		}
		return buckets

	default: // daily
		buckets := make([]TimeBucket, 0, dailyBuckets)
		for i := dailyBuckets - 1; i >= 0; i-- {
			d := dateOnly(ref).AddDate(0, 0, -i)
			key := d.Format("2006-01-02")
			buckets = append(buckets, TimeBucket{Date: key, Label: key[5:]})
		}
		return buckets
	}
}

// bucketKey truncates a transaction date to its bucket's granularity.
func bucketKey(mode ViewMode, d time.Time) string {
	switch mode {
	case ViewModeWeekly:
		return weekStart(d).Format("2006-01-02")
	case ViewModeMonthly:
		return d.Format("2006-01")
	default:
		return d.Format("2006-01-02")
	}
}

func weekLabel(weeksAgo int) string {
	if weeksAgo == 0 {
		return "이번 주"
	}
	return fmt.Sprintf("%d주 전", weeksAgo)
}

// dateOnly strips the time-of-day component; aggregation is calendar-day
// based throughout.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Sunday on or before d.
func weekStart(d time.Time) time.Time {
	dd := dateOnly(d)
	return dd.AddDate(0, 0, -int(dd.Weekday()))
}

// daysBetween returns the whole calendar days from d to ref. Negative when
// d is after ref.
func daysBetween(ref, d time.Time) int {
	return int(dateOnly(ref).Unix()/86400 - dateOnly(d).Unix()/86400)
}
