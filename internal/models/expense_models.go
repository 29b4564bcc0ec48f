package models

// Expense represents an operating expense. No foreign-key relations.
type Expense struct {
	ID          string  `json:"id"`
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"min=0"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
	Vendor      string  `json:"vendor,omitempty"`
}

// ExpensePatch is a partial expense update; nil fields are left untouched.
type ExpensePatch struct {
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	Vendor      *string  `json:"vendor"`
}
