package models

// Plan represents a membership plan. Duration is in calendar months.
// Deleting a plan that members or payments still reference leaves their
// planId dangling; lookups then fall back to an "Unknown Plan" label.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" binding:"required"`
	Duration    int      `json:"duration" binding:"required,min=1"`
	Price       float64  `json:"price" binding:"min=0"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features"`
	IsActive    bool     `json:"isActive"`
}

// PlanPatch is a partial plan update; nil fields are left untouched.
type PlanPatch struct {
	Name        *string  `json:"name"`
	Duration    *int     `json:"duration"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"isActive"`
}
