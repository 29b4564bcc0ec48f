package services

import (
	"math"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/store"
)

// Days-left threshold at or below which an active membership counts as
// ending soon.
const endingSoonDays = 7

// GetMembershipStatus derives the current membership status for a member from
// the join date, the referenced plan's duration in calendar months and "now".
// It is deterministic given its inputs and must be re-evaluated per use, never
// cached, since "today" moves.
//
// Missing inputs degrade instead of failing: a nil member or empty plan list
// yields Unknown, a dangling planId yields No Plan.
func GetMembershipStatus(member *models.Member, plans []models.Plan, now time.Time) models.MembershipStatusInfo {
	if member == nil || len(plans) == 0 {
		return models.MembershipStatusInfo{Status: models.MembershipUnknown}
	}

	var plan *models.Plan
	for i := range plans {
		if plans[i].ID == member.PlanID {
			plan = &plans[i]
			break
		}
	}
	if plan == nil {
		return models.MembershipStatusInfo{Status: models.MembershipNoPlan}
	}

	joinDate, err := time.Parse(store.DateLayout, member.JoinDate)
	if err != nil {
		return models.MembershipStatusInfo{Status: models.MembershipUnknown, PlanName: plan.Name}
	}

	duration := plan.Duration
	if duration <= 0 {
		duration = 1
	}
	endDate := joinDate.AddDate(0, duration, 0)
	daysLeft := int(math.Ceil(endDate.Sub(now).Hours() / 24))

	status := models.MembershipActive
	if daysLeft < 0 {
		status = models.MembershipExpired
	} else if daysLeft <= endingSoonDays {
		status = models.MembershipEndingSoon
	}

	return models.MembershipStatusInfo{
		Status:    status,
		DaysLeft:  daysLeft,
		StartDate: member.JoinDate,
		EndDate:   endDate.Format(store.DateLayout),
		PlanName:  plan.Name,
	}
}
