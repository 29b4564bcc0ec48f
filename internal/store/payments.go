package store

import (
	"fmt"

	"gym_crm_backend/internal/models"
)

// Payments returns a snapshot of the payment list in insertion order.
func (s *GymStore) Payments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Payment(nil), s.payments...)
}

// AddPayment assigns a fresh id and a generated invoice number, appends and
// persists. The invoice number is INV-YYYYMMDD-NNNN where YYYYMMDD is the
// creation date (not the payment date) and NNNN is the collection size plus
// one at creation time.
func (s *GymStore) AddPayment(payment models.Payment) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment.ID = newID()
	payment.InvoiceNumber = fmt.Sprintf("INV-%s-%04d", s.now().Format("20060102"), len(s.payments)+1)
	s.payments = append(s.payments, payment)
	if err := s.persist(KeyPayments, s.payments); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// UpdatePayment shallow-merges the patch into the payment with the given id.
// Status changes, including the manual flip to overdue, go through here;
// nothing ever escalates a pending payment to overdue automatically.
func (s *GymStore) UpdatePayment(id string, patch models.PaymentPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID != id {
			continue
		}
		p := &s.payments[i]
		if patch.MemberID != nil {
			p.MemberID = *patch.MemberID
		}
		if patch.PlanID != nil {
			p.PlanID = *patch.PlanID
		}
		if patch.Amount != nil {
			p.Amount = *patch.Amount
		}
		if patch.PaymentMethod != nil {
			p.PaymentMethod = *patch.PaymentMethod
		}
		if patch.PaymentDate != nil {
			p.PaymentDate = *patch.PaymentDate
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		return true, s.persist(KeyPayments, s.payments)
	}
	return false, nil
}

// DeletePayment removes the payment with the given id; unknown ids no-op.
func (s *GymStore) DeletePayment(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID == id {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			return true, s.persist(KeyPayments, s.payments)
		}
	}
	return false, nil
}

// GetPaymentByID looks a payment up by id with no side effects.
func (s *GymStore) GetPaymentByID(id string) (models.Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.payments {
		if p.ID == id {
			return p, true
		}
	}
	return models.Payment{}, false
}
