package analytics

import (
	"testing"

	"sobi/internal/models"
)

func TestAggregateByCategory(t *testing.T) {
	t.Run("sums_per_category_and_sorts_descending", func(t *testing.T) {
		txns := []models.Transaction{
			txn(t, 5000, models.CategoryFood, "2024-01-15"),
			txn(t, 3000, models.CategoryFood, "2024-01-16"),
			txn(t, 2000, models.CategoryTransport, "2024-01-16"),
			txn(t, 12000, models.CategoryShopping, "2024-01-14"),
		}

		buckets := AggregateByCategory(txns, nil)

		if len(buckets) != 3 {
			t.Fatalf("expected 3 category buckets, got %d", len(buckets))
		}
		if buckets[0].Category != models.CategoryShopping || buckets[0].Amount != 12000 {
			t.Errorf("expected shopping 12000 first, got %s %d", buckets[0].Category, buckets[0].Amount)
		}
		if buckets[1].Category != models.CategoryFood || buckets[1].Amount != 8000 {
			t.Errorf("expected food 8000 second, got %s %d", buckets[1].Category, buckets[1].Amount)
		}
		if buckets[2].Category != models.CategoryTransport || buckets[2].Amount != 2000 {
			t.Errorf("expected transport 2000 last, got %s %d", buckets[2].Category, buckets[2].Amount)
		}
	})

	t.Run("omits_categories_without_activity", func(t *testing.T) {
		txns := []models.Transaction{
			txn(t, 1000, models.CategoryHealth, "2024-01-15"),
		}

		buckets := AggregateByCategory(txns, nil)

		if len(buckets) != 1 {
			t.Fatalf("expected 1 bucket, got %d", len(buckets))
		}
		if buckets[0].Category != models.CategoryHealth {
			t.Errorf("expected health, got %s", buckets[0].Category)
		}
	})

	t.Run("ties_keep_canonical_category_order", func(t *testing.T) {
		// Insertion order deliberately reversed relative to the canonical
		// enumeration; equal amounts must still come out food, transport,
		// utilities.
		txns := []models.Transaction{
			txn(t, 4000, models.CategoryUtilities, "2024-01-15"),
			txn(t, 4000, models.CategoryTransport, "2024-01-15"),
			txn(t, 4000, models.CategoryFood, "2024-01-15"),
		}

		buckets := AggregateByCategory(txns, nil)

		want := []models.Category{models.CategoryFood, models.CategoryTransport, models.CategoryUtilities}
		for i, b := range buckets {
			if b.Category != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], b.Category)
			}
		}
	})

	t.Run("window_predicate_filters_dates", func(t *testing.T) {
		ref := day(t, "2024-01-15")
		txns := []models.Transaction{
			txn(t, 5000, models.CategoryFood, "2024-01-14"),
			txn(t, 7000, models.CategoryFood, "2023-11-01"), // outside window
		}

		buckets := AggregateByCategory(txns, LastNDays(ref, 7))

		if len(buckets) != 1 || buckets[0].Amount != 5000 {
			t.Fatalf("expected only the in-window 5000, got %+v", buckets)
		}
	})

	t.Run("conserves_total_within_window", func(t *testing.T) {
		ref := day(t, "2024-01-15")
		txns := []models.Transaction{
			txn(t, 5000, models.CategoryFood, "2024-01-15"),
			txn(t, 3000, models.CategoryTransport, "2024-01-14"),
			txn(t, 2500, models.CategoryShopping, "2024-01-13"),
			txn(t, 1500, models.CategoryFood, "2024-01-12"),
		}
		include := LastNDays(ref, 7)

		var wantTotal int64
		for _, tx := range txns {
			if include(tx.Date) {
				wantTotal += tx.Amount
			}
		}

		var gotTotal int64
		for _, b := range AggregateByCategory(txns, include) {
			gotTotal += b.Amount
		}

		if gotTotal != wantTotal {
			t.Errorf("expected conserved total %d, got %d", wantTotal, gotTotal)
		}
	})

	t.Run("empty_input_yields_empty_output", func(t *testing.T) {
		buckets := AggregateByCategory(nil, nil)
		if len(buckets) != 0 {
			t.Errorf("expected no buckets, got %d", len(buckets))
		}
	})
}

func TestWindowForMode(t *testing.T) {
	ref := day(t, "2024-03-15")

	t.Run("daily_is_seven_days", func(t *testing.T) {
		include := WindowForMode(ViewModeDaily, ref)
		if !include(day(t, "2024-03-09")) {
			t.Error("expected 6 days back to be included")
		}
		if include(day(t, "2024-03-08")) {
			t.Error("expected 7 days back to be excluded")
		}
	})

	t.Run("weekly_is_twenty_eight_days", func(t *testing.T) {
		include := WindowForMode(ViewModeWeekly, ref)
		if !include(day(t, "2024-02-17")) {
			t.Error("expected 27 days back to be included")
		}
		if include(day(t, "2024-02-16")) {
			t.Error("expected 28 days back to be excluded")
		}
	})

	t.Run("monthly_is_four_calendar_months", func(t *testing.T) {
		include := WindowForMode(ViewModeMonthly, ref)
		if !include(day(t, "2023-12-01")) {
			t.Error("expected December to be included")
		}
		if include(day(t, "2023-11-30")) {
			t.Error("expected November to be excluded")
		}
	})
}
