package store

import "gym_crm_backend/internal/models"

// Inquiries returns a snapshot of the inquiry list in insertion order. Notes
// slices are copied too; writing through a snapshot never reaches the store.
func (s *GymStore) Inquiries() []models.Inquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Inquiry, len(s.inquiries))
	for i, q := range s.inquiries {
		out[i] = copyInquiry(q)
	}
	return out
}

func copyInquiry(q models.Inquiry) models.Inquiry {
	out := q
	if q.Notes != nil {
		out.Notes = append([]models.InquiryNote{}, q.Notes...)
	}
	return out
}

// AddInquiry assigns a fresh id, sets status to new, the inquiry date to
// today and an empty notes list, appends and persists.
func (s *GymStore) AddInquiry(inquiry models.Inquiry) (models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inquiry.ID = newID()
	inquiry.Status = models.InquiryStatusNew
	inquiry.InquiryDate = s.today()
	inquiry.Notes = []models.InquiryNote{}
	s.inquiries = append(s.inquiries, inquiry)
	if err := s.persist(KeyInquiries, s.inquiries); err != nil {
		return models.Inquiry{}, err
	}
	return inquiry, nil
}

// UpdateInquiry shallow-merges the patch into the inquiry with the given id.
func (s *GymStore) UpdateInquiry(id string, patch models.InquiryPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateInquiryLocked(id, patch)
}

func (s *GymStore) updateInquiryLocked(id string, patch models.InquiryPatch) (bool, error) {
	for i := range s.inquiries {
		if s.inquiries[i].ID != id {
			continue
		}
		q := &s.inquiries[i]
		if patch.Name != nil {
			q.Name = *patch.Name
		}
		if patch.Email != nil {
			q.Email = *patch.Email
		}
		if patch.Phone != nil {
			q.Phone = *patch.Phone
		}
		if patch.InquiryType != nil {
			q.InquiryType = *patch.InquiryType
		}
		if patch.Message != nil {
			q.Message = *patch.Message
		}
		if patch.Source != nil {
			q.Source = *patch.Source
		}
		if patch.Status != nil {
			q.Status = *patch.Status
		}
		if patch.InquiryDate != nil {
			q.InquiryDate = *patch.InquiryDate
		}
		return true, s.persist(KeyInquiries, s.inquiries)
	}
	return false, nil
}

// DeleteInquiry removes the inquiry with the given id; unknown ids no-op.
func (s *GymStore) DeleteInquiry(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inquiries {
		if s.inquiries[i].ID == id {
			s.inquiries = append(s.inquiries[:i], s.inquiries[i+1:]...)
			return true, s.persist(KeyInquiries, s.inquiries)
		}
	}
	return false, nil
}

// GetInquiryByID looks an inquiry up by id with no side effects.
func (s *GymStore) GetInquiryByID(id string) (models.Inquiry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.inquiries {
		if q.ID == id {
			return copyInquiry(q), true
		}
	}
	return models.Inquiry{}, false
}

// AddInquiryNote appends a dated follow-up note to the inquiry.
func (s *GymStore) AddInquiryNote(id, text string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inquiries {
		if s.inquiries[i].ID != id {
			continue
		}
		note := models.InquiryNote{Text: text, Date: s.timestamp()}
		s.inquiries[i].Notes = append(s.inquiries[i].Notes, note)
		return true, s.persist(KeyInquiries, s.inquiries)
	}
	return false, nil
}

// ConvertInquiryToMember creates an active member from the inquiry's contact
// details and the given plan, then marks the inquiry converted. The two
// writes hit separate storage keys and are not atomic: a crash in between
// leaves the member created and the inquiry still unconverted.
func (s *GymStore) ConvertInquiryToMember(inquiryID, planID string) (models.Member, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var inquiry models.Inquiry
	found := false
	for _, q := range s.inquiries {
		if q.ID == inquiryID {
			inquiry = q
			found = true
			break
		}
	}
	if !found {
		return models.Member{}, false, nil
	}

	member := models.Member{
		ID:       newID(),
		Name:     inquiry.Name,
		Email:    inquiry.Email,
		Phone:    inquiry.Phone,
		PlanID:   planID,
		JoinDate: s.today(),
		Status:   models.MemberStatusActive,
		Address:  "N/A",
	}
	s.members = append(s.members, member)
	if err := s.persist(KeyMembers, s.members); err != nil {
		return models.Member{}, true, err
	}

	converted := models.InquiryStatusConverted
	if _, err := s.updateInquiryLocked(inquiryID, models.InquiryPatch{Status: &converted}); err != nil {
		return member, true, err
	}
	return member, true, nil
}
