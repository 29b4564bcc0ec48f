package services

import (
	"testing"
	"time"

	"gym_crm_backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestBuildAlertsPendingPaymentsFirst(t *testing.T) {
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	members := []models.Member{
		{ID: "1", Name: "John Doe", PlanID: "1", JoinDate: "2024-01-15", Status: models.MemberStatusActive},
	}
	payments := []models.Payment{
		{ID: "p1", MemberID: "1", Amount: 49.99, Status: models.PaymentStatusPending},
		{ID: "p2", MemberID: "1", Amount: 10, Status: models.PaymentStatusPaid},
	}

	alerts := BuildAlerts(payments, members, testPlans, now)
	require.Len(t, alerts, 2)

	require.Equal(t, models.AlertTypePendingPayment, alerts[0].Type)
	require.Equal(t, "Pending payment of $49.99 from John Doe", alerts[0].Message)
	require.Equal(t, "p1", alerts[0].RecordID)

	// John's monthly membership ends Feb 15, five days out.
	require.Equal(t, models.AlertTypeMembershipExpiry, alerts[1].Type)
	require.Equal(t, "John Doe's membership ends in 5 day(s)", alerts[1].Message)
	require.Equal(t, "1", alerts[1].RecordID)
}

func TestBuildAlertsUnknownMemberFallback(t *testing.T) {
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "p1", MemberID: "deleted", Amount: 20, Status: models.PaymentStatusPending},
	}

	alerts := BuildAlerts(payments, nil, testPlans, now)
	require.Len(t, alerts, 1)
	require.Equal(t, "Pending payment of $20.00 from Unknown Member", alerts[0].Message)
}

func TestBuildAlertsEndsToday(t *testing.T) {
	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	members := []models.Member{
		{ID: "1", Name: "John Doe", PlanID: "1", JoinDate: "2024-01-15", Status: models.MemberStatusActive},
	}

	alerts := BuildAlerts(nil, members, testPlans, now)
	require.Len(t, alerts, 1)
	require.Equal(t, "John Doe's membership ends today", alerts[0].Message)
}

func TestBuildAlertsSkipsExpiredAndInactive(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	members := []models.Member{
		// Long expired, no alert.
		{ID: "1", Name: "John Doe", PlanID: "1", JoinDate: "2024-01-15", Status: models.MemberStatusActive},
		// Ending soon but inactive, no alert.
		{ID: "2", Name: "Jane Smith", PlanID: "1", JoinDate: "2024-05-05", Status: models.MemberStatusInactive},
	}

	alerts := BuildAlerts(nil, members, testPlans, now)
	require.Empty(t, alerts)
}

func TestBuildAlertsEmptyState(t *testing.T) {
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	alerts := BuildAlerts(nil, nil, nil, now)
	require.NotNil(t, alerts)
	require.Empty(t, alerts)
}
