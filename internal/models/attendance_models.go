package models

// AttendanceRecord is a single gym visit. CheckOut is nil while the visit is
// open. Timestamps use the 2006-01-02T15:04:05 layout.
type AttendanceRecord struct {
	ID       string  `json:"id"`
	MemberID string  `json:"memberId" binding:"required"`
	CheckIn  string  `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
}

// AttendancePatch is a partial attendance update; nil fields are untouched.
type AttendancePatch struct {
	MemberID *string `json:"memberId"`
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
}
