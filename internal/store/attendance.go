package store

import "gym_crm_backend/internal/models"

// Attendance returns a snapshot of the attendance log in insertion order.
func (s *GymStore) Attendance() []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AttendanceRecord(nil), s.attendance...)
}

// CheckIn appends an open attendance record for the member with the check-in
// time set to now. The store does not reject a second open record for the
// same member; that validation belongs to the caller.
func (s *GymStore) CheckIn(memberID string) (models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := models.AttendanceRecord{
		ID:       newID(),
		MemberID: memberID,
		CheckIn:  s.timestamp(),
		CheckOut: nil,
	}
	s.attendance = append(s.attendance, record)
	if err := s.persist(KeyAttendance, s.attendance); err != nil {
		return models.AttendanceRecord{}, err
	}
	return record, nil
}

// CheckOut closes the record with the given id, setting the check-out time
// to now. Unknown ids and already-closed records are a no-op.
func (s *GymStore) CheckOut(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.attendance {
		if s.attendance[i].ID != id {
			continue
		}
		if s.attendance[i].CheckOut != nil {
			return false, nil
		}
		ts := s.timestamp()
		s.attendance[i].CheckOut = &ts
		return true, s.persist(KeyAttendance, s.attendance)
	}
	return false, nil
}

// AddAttendance appends a record as given, assigning a fresh id. Used for
// manual corrections; CheckIn is the normal entry point.
func (s *GymStore) AddAttendance(record models.AttendanceRecord) (models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = newID()
	if record.CheckIn == "" {
		record.CheckIn = s.timestamp()
	}
	s.attendance = append(s.attendance, record)
	if err := s.persist(KeyAttendance, s.attendance); err != nil {
		return models.AttendanceRecord{}, err
	}
	return record, nil
}

// UpdateAttendance shallow-merges the patch into the record with the given id.
func (s *GymStore) UpdateAttendance(id string, patch models.AttendancePatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.attendance {
		if s.attendance[i].ID != id {
			continue
		}
		r := &s.attendance[i]
		if patch.MemberID != nil {
			r.MemberID = *patch.MemberID
		}
		if patch.CheckIn != nil {
			r.CheckIn = *patch.CheckIn
		}
		if patch.CheckOut != nil {
			r.CheckOut = patch.CheckOut
		}
		return true, s.persist(KeyAttendance, s.attendance)
	}
	return false, nil
}

// DeleteAttendance removes the record with the given id; unknown ids no-op.
func (s *GymStore) DeleteAttendance(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.attendance {
		if s.attendance[i].ID == id {
			s.attendance = append(s.attendance[:i], s.attendance[i+1:]...)
			return true, s.persist(KeyAttendance, s.attendance)
		}
	}
	return false, nil
}

// GetAttendanceByID looks a record up by id with no side effects.
func (s *GymStore) GetAttendanceByID(id string) (models.AttendanceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.attendance {
		if r.ID == id {
			return r, true
		}
	}
	return models.AttendanceRecord{}, false
}
