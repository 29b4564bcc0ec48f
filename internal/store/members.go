package store

import "gym_crm_backend/internal/models"

// Members returns a snapshot of the member list in insertion order.
func (s *GymStore) Members() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Member(nil), s.members...)
}

// AddMember assigns a fresh id, defaults JoinDate to today when omitted,
// appends and persists. Returns the stored member.
func (s *GymStore) AddMember(member models.Member) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member.ID = newID()
	if member.JoinDate == "" {
		member.JoinDate = s.today()
	}
	s.members = append(s.members, member)
	if err := s.persist(KeyMembers, s.members); err != nil {
		return models.Member{}, err
	}
	return member, nil
}

// UpdateMember shallow-merges the patch into the member with the given id.
// An unknown id is a no-op; the returned flag reports whether a member was
// found.
func (s *GymStore) UpdateMember(id string, patch models.MemberPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID != id {
			continue
		}
		m := &s.members[i]
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Email != nil {
			m.Email = *patch.Email
		}
		if patch.Phone != nil {
			m.Phone = *patch.Phone
		}
		if patch.DOB != nil {
			m.DOB = *patch.DOB
		}
		if patch.Address != nil {
			m.Address = *patch.Address
		}
		if patch.PlanID != nil {
			m.PlanID = *patch.PlanID
		}
		if patch.JoinDate != nil {
			m.JoinDate = *patch.JoinDate
		}
		if patch.Status != nil {
			m.Status = *patch.Status
		}
		if patch.Photo != nil {
			m.Photo = *patch.Photo
		}
		return true, s.persist(KeyMembers, s.members)
	}
	return false, nil
}

// DeleteMember removes the member with the given id. Deleting an unknown id
// is a no-op, which makes the operation idempotent. Attendance and payment
// records referencing the member are left in place.
func (s *GymStore) DeleteMember(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return true, s.persist(KeyMembers, s.members)
		}
	}
	return false, nil
}

// GetMemberByID looks a member up by id with no side effects.
func (s *GymStore) GetMemberByID(id string) (models.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return models.Member{}, false
}
