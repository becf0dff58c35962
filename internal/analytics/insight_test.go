package analytics

import (
	"testing"

	"sobi/internal/models"
)

func insight(id string, insightType models.InsightType, severity models.InsightSeverity, potentialSavings *int64) models.AIInsight {
	return models.AIInsight{
		Base:             models.Base{ID: id},
		UserID:           "00000000-0000-0000-0000-000000000001",
		Type:             insightType,
		Severity:         severity,
		Title:            "insight " + id,
		Description:      "generated insight",
		PotentialSavings: potentialSavings,
	}
}

func savings(amount int64) *int64 { return &amount }

func TestClassifyInsights(t *testing.T) {
	t.Run("partitions_into_views", func(t *testing.T) {
		insights := []models.AIInsight{
			insight("a", models.InsightTypeSavingsOpportunity, models.InsightSeverityInfo, savings(30000)),
			insight("b", models.InsightTypeOverspending, models.InsightSeverityCritical, nil),
			insight("c", models.InsightTypeTrendIncrease, models.InsightSeverityWarning, savings(12000)),
			insight("d", models.InsightTypeSpendingPersona, models.InsightSeverityInfo, nil),
		}

		summary := ClassifyInsights(insights)

		if len(summary.All) != 4 {
			t.Errorf("expected all view of 4, got %d", len(summary.All))
		}
		if len(summary.Savings) != 2 {
			t.Fatalf("expected 2 savings insights, got %d", len(summary.Savings))
		}
		if summary.Savings[0].ID != "a" || summary.Savings[1].ID != "c" {
			t.Errorf("expected savings view [a c], got [%s %s]", summary.Savings[0].ID, summary.Savings[1].ID)
		}
		if len(summary.Warnings) != 2 {
			t.Fatalf("expected 2 warnings, got %d", len(summary.Warnings))
		}
		if summary.Warnings[0].ID != "b" || summary.Warnings[1].ID != "c" {
			t.Errorf("expected warnings view [b c], got [%s %s]", summary.Warnings[0].ID, summary.Warnings[1].ID)
		}
		if summary.WarningCount != 2 {
			t.Errorf("expected warning count 2, got %d", summary.WarningCount)
		}
	})

	t.Run("savings_total_covers_all_insights_not_just_savings_view", func(t *testing.T) {
		insights := []models.AIInsight{
			insight("a", models.InsightTypeSavingsOpportunity, models.InsightSeverityInfo, savings(30000)),
			// category_warning with savings belongs to the savings view AND
			// its amount counts toward the total.
			insight("b", models.InsightTypeCategoryWarning, models.InsightSeverityWarning, savings(5000)),
			insight("c", models.InsightTypeOverspending, models.InsightSeverityCritical, nil),
		}

		summary := ClassifyInsights(insights)
		if summary.TotalPotentialSavings != 35000 {
			t.Errorf("expected total potential savings 35000, got %d", summary.TotalPotentialSavings)
		}
	})

	t.Run("savings_opportunity_without_amount_still_in_savings_view", func(t *testing.T) {
		insights := []models.AIInsight{
			insight("a", models.InsightTypeSavingsOpportunity, models.InsightSeverityInfo, nil),
		}

		summary := ClassifyInsights(insights)
		if len(summary.Savings) != 1 {
			t.Errorf("expected savings view of 1, got %d", len(summary.Savings))
		}
		if summary.TotalPotentialSavings != 0 {
			t.Errorf("expected total 0 for missing amount, got %d", summary.TotalPotentialSavings)
		}
	})

	t.Run("zero_savings_amount_does_not_qualify", func(t *testing.T) {
		insights := []models.AIInsight{
			insight("a", models.InsightTypeTrendDecrease, models.InsightSeverityInfo, savings(0)),
		}

		summary := ClassifyInsights(insights)
		if len(summary.Savings) != 0 {
			t.Errorf("expected empty savings view, got %d", len(summary.Savings))
		}
	})

	t.Run("an_insight_can_appear_in_both_views", func(t *testing.T) {
		insights := []models.AIInsight{
			insight("a", models.InsightTypeSavingsOpportunity, models.InsightSeverityCritical, savings(10000)),
		}

		summary := ClassifyInsights(insights)
		if len(summary.Savings) != 1 || len(summary.Warnings) != 1 {
			t.Errorf("expected insight in both views, got savings=%d warnings=%d",
				len(summary.Savings), len(summary.Warnings))
		}
	})

	t.Run("every_warning_has_warning_or_critical_severity", func(t *testing.T) {
		insights := []models.AIInsight{
			insight("a", models.InsightTypeOverspending, models.InsightSeverityInfo, nil),
			insight("b", models.InsightTypeOverspending, models.InsightSeverityWarning, nil),
			insight("c", models.InsightTypeOverspending, models.InsightSeverityCritical, nil),
		}

		summary := ClassifyInsights(insights)
		for _, w := range summary.Warnings {
			if w.Severity != models.InsightSeverityWarning && w.Severity != models.InsightSeverityCritical {
				t.Errorf("warning view contains severity %s", w.Severity)
			}
		}
		if len(summary.Warnings) != 2 {
			t.Errorf("expected 2 warnings, got %d", len(summary.Warnings))
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		summary := ClassifyInsights(nil)
		if len(summary.All) != 0 || len(summary.Savings) != 0 || len(summary.Warnings) != 0 {
			t.Errorf("expected empty views, got %+v", summary)
		}
		if summary.TotalPotentialSavings != 0 || summary.WarningCount != 0 {
			t.Errorf("expected zero counters, got %+v", summary)
		}
	})
}
