package store

import "gym_crm_backend/internal/models"

// Expenses returns a snapshot of the expense list in insertion order.
func (s *GymStore) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Expense(nil), s.expenses...)
}

// AddExpense assigns a fresh id, appends and persists.
func (s *GymStore) AddExpense(expense models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense.ID = newID()
	if expense.Date == "" {
		expense.Date = s.today()
	}
	s.expenses = append(s.expenses, expense)
	if err := s.persist(KeyExpenses, s.expenses); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

// UpdateExpense shallow-merges the patch into the expense with the given id.
func (s *GymStore) UpdateExpense(id string, patch models.ExpensePatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID != id {
			continue
		}
		e := &s.expenses[i]
		if patch.Category != nil {
			e.Category = *patch.Category
		}
		if patch.Amount != nil {
			e.Amount = *patch.Amount
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.Date != nil {
			e.Date = *patch.Date
		}
		if patch.Vendor != nil {
			e.Vendor = *patch.Vendor
		}
		return true, s.persist(KeyExpenses, s.expenses)
	}
	return false, nil
}

// DeleteExpense removes the expense with the given id; unknown ids no-op.
func (s *GymStore) DeleteExpense(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return true, s.persist(KeyExpenses, s.expenses)
		}
	}
	return false, nil
}

// GetExpenseByID looks an expense up by id with no side effects.
func (s *GymStore) GetExpenseByID(id string) (models.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return models.Expense{}, false
}
