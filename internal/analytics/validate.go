package analytics

import (
	"fmt"

	"sobi/internal/models"
)

// RejectedTransaction reports one record that failed boundary validation.
type RejectedTransaction struct {
	Index  int    `json:"index"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason"`
}

// ValidateTransactions screens a snapshot before aggregation. Malformed
// records are rejected individually and reported back to the caller next to
// the computed aggregate; one bad record never aborts the whole
// computation, and it never reaches the aggregation functions where it
// could silently corrupt a total.
func ValidateTransactions(txns []models.Transaction) ([]models.Transaction, []RejectedTransaction) {
	valid := make([]models.Transaction, 0, len(txns))
	var rejected []RejectedTransaction

	for i, t := range txns {
		if reason := checkTransaction(t); reason != "" {
			rejected = append(rejected, RejectedTransaction{Index: i, ID: t.ID, Reason: reason})
			continue
		}
		valid = append(valid, t)
	}
	return valid, rejected
}

func checkTransaction(t models.Transaction) string {
	switch {
	case t.ID == "":
		return "missing id"
	case t.Amount < 0:
		return "negative amount"
	case !t.Category.IsValid():
		return fmt.Sprintf("unknown category %q", t.Category)
	case t.Date.IsZero():
		return "missing date"
	}
	return ""
}
