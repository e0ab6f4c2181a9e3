package models

// Expense is a personal expense entry, visible only to its owner.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// UserID is the owner of the expense.
	UserID string `json:"-"`

	// Description is a free-text label.
	Description string `json:"description"`

	// Amount is the expense amount. Always positive.
	Amount float64 `json:"amount"`

	// Category groups expenses for the summary view (e.g. "Food", "Travel").
	Category string `json:"category"`

	// Date is the day the expense was incurred, in YYYY-MM-DD form.
	Date string `json:"date"`

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64 `json:"created_at"`
}
