package analytics

import (
	"sobi/internal/models"
)

// InsightSummary partitions a list of AI insights into display views. The
// views are independent projections over the same source list: an insight
// can appear in both Savings and Warnings, and input ordering is preserved
// (the producer already sorts newest first).
type InsightSummary struct {
	All      []models.AIInsight `json:"all"`
	Savings  []models.AIInsight `json:"savings"`
	Warnings []models.AIInsight `json:"warnings"`

	TotalPotentialSavings int64 `json:"total_potential_savings"`
	WarningCount          int   `json:"warning_count"`
}

// ClassifyInsights computes the tabbed insight views and their headline
// counts. Savings collects savings opportunities plus anything with a
// positive potential-savings amount; Warnings collects warning and critical
// severities. TotalPotentialSavings sums over every insight, not just the
// savings view, treating absent values as zero.
func ClassifyInsights(insights []models.AIInsight) InsightSummary {
	summary := InsightSummary{
		All:      insights,
		Savings:  make([]models.AIInsight, 0, len(insights)),
		Warnings: make([]models.AIInsight, 0, len(insights)),
	}

	for _, in := range insights {
		savings := savingsAmount(in)
		summary.TotalPotentialSavings += savings

		if in.Type == models.InsightTypeSavingsOpportunity || savings > 0 {
			summary.Savings = append(summary.Savings, in)
		}
		if in.Severity == models.InsightSeverityWarning || in.Severity == models.InsightSeverityCritical {
			summary.Warnings = append(summary.Warnings, in)
		}
	}

	summary.WarningCount = len(summary.Warnings)
	return summary
}

func savingsAmount(in models.AIInsight) int64 {
	if in.PotentialSavings == nil {
		return 0
	}
	return *in.PotentialSavings
}
