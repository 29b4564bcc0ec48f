package store

import "gym_crm_backend/internal/models"

// Plans returns a snapshot of the plan list in insertion order. Features
// slices are copied too; writing through a snapshot never reaches the store.
func (s *GymStore) Plans() []models.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Plan, len(s.plans))
	for i, p := range s.plans {
		out[i] = copyPlan(p)
	}
	return out
}

func copyPlan(p models.Plan) models.Plan {
	out := p
	if p.Features != nil {
		out.Features = append([]string{}, p.Features...)
	}
	return out
}

// AddPlan assigns a fresh id, marks the plan active, appends and persists.
func (s *GymStore) AddPlan(plan models.Plan) (models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan.ID = newID()
	plan.IsActive = true
	if plan.Features == nil {
		plan.Features = []string{}
	}
	s.plans = append(s.plans, plan)
	if err := s.persist(KeyPlans, s.plans); err != nil {
		return models.Plan{}, err
	}
	return plan, nil
}

// UpdatePlan shallow-merges the patch into the plan with the given id.
func (s *GymStore) UpdatePlan(id string, patch models.PlanPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plans {
		if s.plans[i].ID != id {
			continue
		}
		p := &s.plans[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Duration != nil {
			p.Duration = *patch.Duration
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Features != nil {
			p.Features = patch.Features
		}
		if patch.IsActive != nil {
			p.IsActive = *patch.IsActive
		}
		return true, s.persist(KeyPlans, s.plans)
	}
	return false, nil
}

// DeletePlan removes the plan with the given id. There is no cascade: members
// and payments referencing the plan keep their now-dangling planId and
// downstream lookups render an "Unknown Plan" fallback.
func (s *GymStore) DeletePlan(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plans {
		if s.plans[i].ID == id {
			s.plans = append(s.plans[:i], s.plans[i+1:]...)
			return true, s.persist(KeyPlans, s.plans)
		}
	}
	return false, nil
}

// GetPlanByID looks a plan up by id with no side effects.
func (s *GymStore) GetPlanByID(id string) (models.Plan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.plans {
		if p.ID == id {
			return copyPlan(p), true
		}
	}
	return models.Plan{}, false
}
