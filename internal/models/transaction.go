package models

import "time"

// Category classifies a spending event. The set is fixed; Categories
// declares the canonical ordering used for deterministic tie-breaks in
// aggregation output.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryEducation     Category = "education"
	CategoryHealth        Category = "health"
	CategoryUtilities     Category = "utilities"
	CategoryOther         Category = "other"
)

// Categories lists every category in canonical order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryEducation,
	CategoryHealth,
	CategoryUtilities,
	CategoryOther,
}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the Korean display label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryFood:
		return "식비"
	case CategoryTransport:
		return "교통비"
	case CategoryShopping:
		return "쇼핑"
	case CategoryEntertainment:
		return "문화/여가"
	case CategoryEducation:
		return "교육"
	case CategoryHealth:
		return "의료/건강"
	case CategoryUtilities:
		return "공과금"
	case CategoryOther:
		return "기타"
	}
	return string(c)
}

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodOther    PaymentMethod = "other"
)

// IsValid reports whether p is a known payment method.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodOther:
		return true
	}
	return false
}

// Transaction represents a single spending event. Amounts are whole Korean
// won (KRW has no minor unit). Date carries calendar-day significance only;
// aggregation never looks at time of day.
type Transaction struct {
	Base
	UserID        string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount        int64         `gorm:"type:bigint;not null" json:"amount"`
	Category      Category      `gorm:"not null" json:"category"`
	Description   string        `gorm:"not null" json:"description"`
	Merchant      string        `json:"merchant,omitempty"`
	PaymentMethod PaymentMethod `gorm:"not null" json:"payment_method"`
	Date          time.Time     `gorm:"not null" json:"date"`
}
