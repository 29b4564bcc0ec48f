package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/storage"
	"gym_crm_backend/pkg/utils"
)

// Date layouts shared by all persisted records.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05"
)

// GymStore is the single source of truth for the seven domain collections.
// It hydrates from a storage backend at construction and writes the affected
// collection back on every mutation (write-through), so state is durable by
// the time an operation returns. A mutex serializes mutations; readers get
// snapshot copies and must not mutate them in place.
//
// The store never validates input shapes or ranges, and it does not enforce
// referential integrity: deleting a plan that members still reference leaves
// their planId dangling, and downstream lookups degrade to fallback labels.
type GymStore struct {
	mu      sync.RWMutex
	backend storage.Backend
	now     func() time.Time

	gymProfile models.GymProfile
	members    []models.Member
	plans      []models.Plan
	attendance []models.AttendanceRecord
	payments   []models.Payment
	inquiries  []models.Inquiry
	expenses   []models.Expense
}

// New hydrates a store from backend, seeding any absent or malformed
// collection with the default dataset.
func New(backend storage.Backend) (*GymStore, error) {
	return NewWithClock(backend, time.Now)
}

// NewWithClock is New with an injectable clock, used by tests to pin "today".
func NewWithClock(backend storage.Backend, now func() time.Time) (*GymStore, error) {
	s := &GymStore{backend: backend, now: now}

	if err := hydrate(backend, KeyGymProfile, &s.gymProfile, seedGymProfile); err != nil {
		return nil, err
	}
	if err := hydrate(backend, KeyMembers, &s.members, seedMembers); err != nil {
		return nil, err
	}
	if err := hydrate(backend, KeyPlans, &s.plans, seedPlans); err != nil {
		return nil, err
	}
	if err := hydrate(backend, KeyAttendance, &s.attendance, seedAttendance); err != nil {
		return nil, err
	}
	if err := hydrate(backend, KeyPayments, &s.payments, seedPayments); err != nil {
		return nil, err
	}
	if err := hydrate(backend, KeyInquiries, &s.inquiries, seedInquiries); err != nil {
		return nil, err
	}
	if err := hydrate(backend, KeyExpenses, &s.expenses, seedExpenses); err != nil {
		return nil, err
	}

	// Persist everything once after hydration so a fresh install lands the
	// seed data in the backend immediately.
	for key, v := range map[string]interface{}{
		KeyGymProfile: s.gymProfile,
		KeyMembers:    s.members,
		KeyPlans:      s.plans,
		KeyAttendance: s.attendance,
		KeyPayments:   s.payments,
		KeyInquiries:  s.inquiries,
		KeyExpenses:   s.expenses,
	} {
		if err := s.persist(key, v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// hydrate fills dst from the blob stored under key. An absent key or a
// malformed blob falls back to the seed dataset rather than propagating a
// parse error; only backend failures abort construction.
func hydrate[T any](backend storage.Backend, key string, dst *T, seed func() T) error {
	data, err := backend.Get(key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			*dst = seed()
			return nil
		}
		return fmt.Errorf("hydrating %s: %w", key, err)
	}
	if jsonErr := json.Unmarshal(data, dst); jsonErr != nil {
		utils.LogError(jsonErr, "Malformed blob for key "+key+", falling back to seed data")
		*dst = seed()
	}
	return nil
}

// persist serializes one collection to its storage key. Callers hold the lock.
func (s *GymStore) persist(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", key, err)
	}
	if err := s.backend.Set(key, data); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}

func (s *GymStore) today() string {
	return s.now().Format(DateLayout)
}

func (s *GymStore) timestamp() string {
	return s.now().Format(TimestampLayout)
}

// GymProfile returns a snapshot of the singleton profile.
func (s *GymStore) GymProfile() models.GymProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProfile(s.gymProfile)
}

// UpdateGymProfile merges the patch into the profile. BusinessHours entries
// are merged per weekday and BankDetails field by field, so updating one bank
// field never loses its siblings. Returns the updated profile.
func (s *GymStore) UpdateGymProfile(patch models.GymProfilePatch) (models.GymProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.gymProfile
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Logo != nil {
		p.Logo = *patch.Logo
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.State != nil {
		p.State = *patch.State
	}
	if patch.Zip != nil {
		p.Zip = *patch.Zip
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Website != nil {
		p.Website = *patch.Website
	}
	if len(patch.BusinessHours) > 0 {
		if p.BusinessHours == nil {
			p.BusinessHours = map[string]models.BusinessDay{}
		}
		for day, hours := range patch.BusinessHours {
			p.BusinessHours[day] = hours
		}
	}
	if patch.BankDetails != nil {
		if patch.BankDetails.AccountHolder != nil {
			p.BankDetails.AccountHolder = *patch.BankDetails.AccountHolder
		}
		if patch.BankDetails.AccountNumber != nil {
			p.BankDetails.AccountNumber = *patch.BankDetails.AccountNumber
		}
		if patch.BankDetails.BankName != nil {
			p.BankDetails.BankName = *patch.BankDetails.BankName
		}
		if patch.BankDetails.IFSC != nil {
			p.BankDetails.IFSC = *patch.BankDetails.IFSC
		}
	}

	if err := s.persist(KeyGymProfile, s.gymProfile); err != nil {
		return models.GymProfile{}, err
	}
	return copyProfile(s.gymProfile), nil
}

func copyProfile(p models.GymProfile) models.GymProfile {
	out := p
	out.BusinessHours = make(map[string]models.BusinessDay, len(p.BusinessHours))
	for day, hours := range p.BusinessHours {
		out.BusinessHours[day] = hours
	}
	return out
}
