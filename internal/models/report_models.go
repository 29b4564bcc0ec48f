package models

// Derived membership status values. Computed from joinDate + plan duration
// and the current date on every evaluation; never persisted.
const (
	MembershipUnknown    = "Unknown"
	MembershipNoPlan     = "No Plan"
	MembershipActive     = "Active"
	MembershipEndingSoon = "Ending Soon"
	MembershipExpired    = "Expired"
)

// MembershipStatusInfo is the result of the membership-status computation.
type MembershipStatusInfo struct {
	Status    string `json:"status"`
	DaysLeft  int    `json:"days_left"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	PlanName  string `json:"plan_name,omitempty"`
}

// Alert types surfaced as notifications. Expired memberships are shown as a
// badge on the member list, not as a notification entry.
const (
	AlertTypePendingPayment   = "pending_payment"
	AlertTypeMembershipExpiry = "membership_expiry"
)

// Alert is a single derived notification entry. Recomputed fresh on every
// request; there is no stored seen/snooze state.
type Alert struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	RecordID string `json:"record_id"`
}

// FinancialSummary holds revenue/expense aggregates for one period.
type FinancialSummary struct {
	Period        string  `json:"period"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	ProfitMargin  float64 `json:"profit_margin"` // percent; 0 when revenue is 0
}

// PlanRevenue is one row of the revenue-by-plan breakdown, in plan-list order.
type PlanRevenue struct {
	PlanID   string  `json:"plan_id"`
	PlanName string  `json:"plan_name"`
	Revenue  float64 `json:"revenue"`
}

// CategoryExpense is one row of the expense-by-category breakdown, in the
// order categories are first encountered.
type CategoryExpense struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// PlanMemberCount is one row of the members-per-plan breakdown.
type PlanMemberCount struct {
	PlanID   string `json:"plan_id"`
	PlanName string `json:"plan_name"`
	Members  int    `json:"members"`
}

// DashboardSummary holds key metrics for the dashboard.
type DashboardSummary struct {
	ActiveMembersCount   int     `json:"active_members_count"`
	InactiveMembersCount int     `json:"inactive_members_count"`
	MonthRevenue         float64 `json:"month_revenue"`
	MonthExpenses        float64 `json:"month_expenses"`
	MonthProfit          float64 `json:"month_profit"`
	PendingPaymentsCount int     `json:"pending_payments_count"`
	TodayCheckInsCount   int     `json:"today_check_ins_count"`
}
