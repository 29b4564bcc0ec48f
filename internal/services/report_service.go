package services

import (
	"errors"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/store"
)

// Reporting periods. Each compares a record's stored date against "now" at
// the matching calendar granularity; weeks start on Sunday.
const (
	PeriodToday   = "today"
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
)

// ErrInvalidPeriod is returned when a report request names an unknown period.
var ErrInvalidPeriod = errors.New("invalid report period")

// ValidPeriod reports whether period names a supported reporting period.
func ValidPeriod(period string) bool {
	switch period {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// parseRecordDate accepts both stored date shapes: plain dates and check-in
// style timestamps.
func parseRecordDate(value string) (time.Time, bool) {
	if t, err := time.Parse(store.DateLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(store.TimestampLayout, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// InPeriod reports whether the stored date string falls in the given period
// relative to now. Unparseable dates fall outside every period. Record dates
// parse as UTC, so now is reduced to its calendar day in UTC before any
// comparison; the answer never depends on the server's zone.
func InPeriod(value, period string, now time.Time) bool {
	t, ok := parseRecordDate(value)
	if !ok {
		return false
	}
	switch period {
	case PeriodToday:
		return t.Year() == now.Year() && t.YearDay() == now.YearDay()
	case PeriodWeek:
		weekStart := calendarDayUTC(now).AddDate(0, 0, -int(now.Weekday()))
		return !t.Before(weekStart) && t.Before(weekStart.AddDate(0, 0, 7))
	case PeriodMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	case PeriodQuarter:
		return t.Year() == now.Year() && (int(t.Month())-1)/3 == (int(now.Month())-1)/3
	case PeriodYear:
		return t.Year() == now.Year()
	}
	return false
}

// calendarDayUTC drops t's clock and zone, keeping the wall-calendar day.
func calendarDayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RevenueForPeriod sums paid payment amounts with a payment date inside the
// period. Pending and overdue payments never count toward revenue.
func RevenueForPeriod(payments []models.Payment, period string, now time.Time) float64 {
	total := 0.0
	for _, p := range payments {
		if p.Status == models.PaymentStatusPaid && InPeriod(p.PaymentDate, period, now) {
			total += p.Amount
		}
	}
	return total
}

// ExpensesForPeriod sums expense amounts with a date inside the period.
func ExpensesForPeriod(expenses []models.Expense, period string, now time.Time) float64 {
	total := 0.0
	for _, e := range expenses {
		if InPeriod(e.Date, period, now) {
			total += e.Amount
		}
	}
	return total
}

// RevenueByPlan groups the period's paid payments by plan, preserving the
// plan list's order. Payments referencing a deleted plan are dropped from the
// breakdown (they still count toward the period total).
func RevenueByPlan(payments []models.Payment, plans []models.Plan, period string, now time.Time) []models.PlanRevenue {
	out := make([]models.PlanRevenue, 0, len(plans))
	for _, plan := range plans {
		row := models.PlanRevenue{PlanID: plan.ID, PlanName: plan.Name}
		for _, p := range payments {
			if p.PlanID == plan.ID && p.Status == models.PaymentStatusPaid && InPeriod(p.PaymentDate, period, now) {
				row.Revenue += p.Amount
			}
		}
		out = append(out, row)
	}
	return out
}

// ExpensesByCategory groups the period's expenses by category in the order
// categories are first encountered.
func ExpensesByCategory(expenses []models.Expense, period string, now time.Time) []models.CategoryExpense {
	var out []models.CategoryExpense
	index := map[string]int{}
	for _, e := range expenses {
		if !InPeriod(e.Date, period, now) {
			continue
		}
		i, seen := index[e.Category]
		if !seen {
			index[e.Category] = len(out)
			out = append(out, models.CategoryExpense{Category: e.Category})
			i = len(out) - 1
		}
		out[i].Amount += e.Amount
	}
	return out
}

// --- ReportService ---

// ReportService produces financial and dashboard aggregates over current
// store state. Every call recomputes from a fresh snapshot.
type ReportService interface {
	FinancialSummary(period string) (models.FinancialSummary, error)
	RevenueByPlan(period string) ([]models.PlanRevenue, error)
	ExpensesByCategory(period string) ([]models.CategoryExpense, error)
	MembersPerPlan() []models.PlanMemberCount
	DashboardSummary() models.DashboardSummary
}

type reportService struct {
	store *store.GymStore
	now   func() time.Time
}

// NewReportService creates a ReportService over the given store.
func NewReportService(s *store.GymStore, now func() time.Time) ReportService {
	if now == nil {
		now = time.Now
	}
	return &reportService{store: s, now: now}
}

func (s *reportService) FinancialSummary(period string) (models.FinancialSummary, error) {
	if !ValidPeriod(period) {
		return models.FinancialSummary{}, ErrInvalidPeriod
	}
	now := s.now()
	revenue := RevenueForPeriod(s.store.Payments(), period, now)
	expenses := ExpensesForPeriod(s.store.Expenses(), period, now)
	profit := revenue - expenses

	margin := 0.0
	if revenue > 0 {
		margin = profit / revenue * 100
	}
	return models.FinancialSummary{
		Period:        period,
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		NetProfit:     profit,
		ProfitMargin:  margin,
	}, nil
}

func (s *reportService) RevenueByPlan(period string) ([]models.PlanRevenue, error) {
	if !ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}
	return RevenueByPlan(s.store.Payments(), s.store.Plans(), period, s.now()), nil
}

func (s *reportService) ExpensesByCategory(period string) ([]models.CategoryExpense, error) {
	if !ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}
	return ExpensesByCategory(s.store.Expenses(), period, s.now()), nil
}

func (s *reportService) MembersPerPlan() []models.PlanMemberCount {
	members := s.store.Members()
	plans := s.store.Plans()

	out := make([]models.PlanMemberCount, 0, len(plans))
	for _, plan := range plans {
		row := models.PlanMemberCount{PlanID: plan.ID, PlanName: plan.Name}
		for _, m := range members {
			if m.PlanID == plan.ID {
				row.Members++
			}
		}
		out = append(out, row)
	}
	return out
}

func (s *reportService) DashboardSummary() models.DashboardSummary {
	now := s.now()
	var summary models.DashboardSummary

	for _, m := range s.store.Members() {
		switch m.Status {
		case models.MemberStatusActive:
			summary.ActiveMembersCount++
		case models.MemberStatusInactive:
			summary.InactiveMembersCount++
		}
	}

	payments := s.store.Payments()
	summary.MonthRevenue = RevenueForPeriod(payments, PeriodMonth, now)
	summary.MonthExpenses = ExpensesForPeriod(s.store.Expenses(), PeriodMonth, now)
	summary.MonthProfit = summary.MonthRevenue - summary.MonthExpenses

	for _, p := range payments {
		if p.Status == models.PaymentStatusPending {
			summary.PendingPaymentsCount++
		}
	}
	for _, a := range s.store.Attendance() {
		if InPeriod(a.CheckIn, PeriodToday, now) {
			summary.TodayCheckInsCount++
		}
	}
	return summary
}
