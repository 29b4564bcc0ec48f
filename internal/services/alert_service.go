package services

import (
	"fmt"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/store"
)

// BuildAlerts derives the notification list from current state: one alert per
// pending payment, then one per active member whose membership is ending
// soon. Expired memberships are not alerted here; the member list surfaces
// them as a badge. There is no deduplication beyond one alert per triggering
// record and no stored seen state.
func BuildAlerts(payments []models.Payment, members []models.Member, plans []models.Plan, now time.Time) []models.Alert {
	alerts := []models.Alert{}

	for _, p := range payments {
		if p.Status != models.PaymentStatusPending {
			continue
		}
		name := "Unknown Member"
		for _, m := range members {
			if m.ID == p.MemberID {
				name = m.Name
				break
			}
		}
		alerts = append(alerts, models.Alert{
			Type:     models.AlertTypePendingPayment,
			Message:  fmt.Sprintf("Pending payment of $%.2f from %s", p.Amount, name),
			RecordID: p.ID,
		})
	}

	for _, m := range members {
		if m.Status != models.MemberStatusActive {
			continue
		}
		info := GetMembershipStatus(&m, plans, now)
		if info.Status != models.MembershipEndingSoon {
			continue
		}
		var msg string
		if info.DaysLeft == 0 {
			msg = fmt.Sprintf("%s's membership ends today", m.Name)
		} else {
			msg = fmt.Sprintf("%s's membership ends in %d day(s)", m.Name, info.DaysLeft)
		}
		alerts = append(alerts, models.Alert{
			Type:     models.AlertTypeMembershipExpiry,
			Message:  msg,
			RecordID: m.ID,
		})
	}
	return alerts
}

// AlertService recomputes the notification list on every call.
type AlertService interface {
	Alerts() []models.Alert
}

type alertService struct {
	store *store.GymStore
	now   func() time.Time
}

// NewAlertService creates an AlertService over the given store.
func NewAlertService(s *store.GymStore, now func() time.Time) AlertService {
	if now == nil {
		now = time.Now
	}
	return &alertService{store: s, now: now}
}

func (s *alertService) Alerts() []models.Alert {
	return BuildAlerts(s.store.Payments(), s.store.Members(), s.store.Plans(), s.now())
}
