package models

// Budget is a per-category spending cap for one month. At most one row
// exists per (user, category, month); writes use upsert semantics. An
// amount of zero means "no cap set" and is treated everywhere as absence,
// never as a real zero limit.
type Budget struct {
	Base
	UserID   string   `gorm:"type:uuid;not null;uniqueIndex:idx_budget_user_category_month" json:"user_id"`
	Category Category `gorm:"not null;uniqueIndex:idx_budget_user_category_month" json:"category"`
	Month    string   `gorm:"not null;uniqueIndex:idx_budget_user_category_month" json:"month"` // YYYY-MM
	Amount   int64    `gorm:"type:bigint;not null" json:"amount"`
}
