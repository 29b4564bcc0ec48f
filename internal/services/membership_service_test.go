package services

import (
	"testing"
	"time"

	"gym_crm_backend/internal/models"

	"github.com/stretchr/testify/require"
)

var testPlans = []models.Plan{
	{ID: "1", Name: "Monthly Basic", Duration: 1, Price: 49.99},
	{ID: "2", Name: "Quarterly Premium", Duration: 3, Price: 129.99},
	{ID: "3", Name: "Yearly Elite", Duration: 12, Price: 449.99},
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetMembershipStatusEndingSoon(t *testing.T) {
	member := &models.Member{ID: "1", Name: "John", PlanID: "1", JoinDate: "2024-01-15"}

	// Monthly plan joined Jan 15 ends Feb 15; five days out it is ending soon.
	info := GetMembershipStatus(member, testPlans, day(2024, 2, 10))
	require.Equal(t, models.MembershipEndingSoon, info.Status)
	require.Equal(t, 5, info.DaysLeft)
	require.Equal(t, "2024-01-15", info.StartDate)
	require.Equal(t, "2024-02-15", info.EndDate)
	require.Equal(t, "Monthly Basic", info.PlanName)
}

func TestGetMembershipStatusExpired(t *testing.T) {
	member := &models.Member{ID: "1", PlanID: "1", JoinDate: "2024-01-15"}

	info := GetMembershipStatus(member, testPlans, day(2024, 2, 20))
	require.Equal(t, models.MembershipExpired, info.Status)
	require.Equal(t, -5, info.DaysLeft)
}

func TestGetMembershipStatusActive(t *testing.T) {
	member := &models.Member{ID: "1", PlanID: "3", JoinDate: "2024-01-15"}

	info := GetMembershipStatus(member, testPlans, day(2024, 2, 10))
	require.Equal(t, models.MembershipActive, info.Status)
	require.Equal(t, "2025-01-15", info.EndDate)
	require.Greater(t, info.DaysLeft, endingSoonDays)
}

func TestGetMembershipStatusBoundaries(t *testing.T) {
	member := &models.Member{ID: "1", PlanID: "1", JoinDate: "2024-01-15"}

	// Exactly at the threshold counts as ending soon.
	info := GetMembershipStatus(member, testPlans, day(2024, 2, 8))
	require.Equal(t, 7, info.DaysLeft)
	require.Equal(t, models.MembershipEndingSoon, info.Status)

	// End date itself is still ending soon, not expired.
	info = GetMembershipStatus(member, testPlans, day(2024, 2, 15))
	require.Equal(t, 0, info.DaysLeft)
	require.Equal(t, models.MembershipEndingSoon, info.Status)

	// One day past the end date flips to expired.
	info = GetMembershipStatus(member, testPlans, day(2024, 2, 16))
	require.Equal(t, models.MembershipExpired, info.Status)
}

func TestGetMembershipStatusMonotonicOverTime(t *testing.T) {
	member := &models.Member{ID: "1", PlanID: "2", JoinDate: "2024-01-01"}

	prev := GetMembershipStatus(member, testPlans, day(2024, 1, 2)).DaysLeft
	for d := day(2024, 1, 3); d.Before(day(2024, 5, 1)); d = d.AddDate(0, 0, 1) {
		cur := GetMembershipStatus(member, testPlans, d).DaysLeft
		require.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestGetMembershipStatusDegradedInputs(t *testing.T) {
	now := day(2024, 2, 10)

	info := GetMembershipStatus(nil, testPlans, now)
	require.Equal(t, models.MembershipUnknown, info.Status)

	member := &models.Member{ID: "1", PlanID: "1", JoinDate: "2024-01-15"}
	info = GetMembershipStatus(member, nil, now)
	require.Equal(t, models.MembershipUnknown, info.Status)

	dangling := &models.Member{ID: "1", PlanID: "deleted-plan", JoinDate: "2024-01-15"}
	info = GetMembershipStatus(dangling, testPlans, now)
	require.Equal(t, models.MembershipNoPlan, info.Status)

	badDate := &models.Member{ID: "1", PlanID: "1", JoinDate: "15/01/2024"}
	info = GetMembershipStatus(badDate, testPlans, now)
	require.Equal(t, models.MembershipUnknown, info.Status)
	require.Equal(t, "Monthly Basic", info.PlanName)
}

func TestGetMembershipStatusZeroDurationTreatedAsOneMonth(t *testing.T) {
	plans := []models.Plan{{ID: "z", Name: "Broken", Duration: 0}}
	member := &models.Member{ID: "1", PlanID: "z", JoinDate: "2024-01-15"}

	info := GetMembershipStatus(member, plans, day(2024, 1, 20))
	require.Equal(t, "2024-02-15", info.EndDate)
}

func TestGetMembershipStatusMonthEndNormalization(t *testing.T) {
	// Jan 31 plus one calendar month normalizes past February's end.
	member := &models.Member{ID: "1", PlanID: "1", JoinDate: "2024-01-31"}

	info := GetMembershipStatus(member, testPlans, day(2024, 2, 1))
	require.Equal(t, "2024-03-02", info.EndDate)
}
