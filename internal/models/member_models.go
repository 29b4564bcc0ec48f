package models

// MemberStatus values stored on a member record. The computed membership
// status (Active / Ending Soon / Expired) is derived, never stored.
const (
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
)

// Member represents a gym member. Dates are stored as YYYY-MM-DD strings to
// keep the persisted JSON shape stable across backends.
type Member struct {
	ID       string `json:"id"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	DOB      string `json:"dob,omitempty"`
	Address  string `json:"address,omitempty"`
	PlanID   string `json:"planId"`
	JoinDate string `json:"joinDate"`
	Status   string `json:"status"`
	Photo    string `json:"photo,omitempty"` // optional data-URI
}

// MemberPatch is a partial member update; nil fields are left untouched.
type MemberPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	DOB      *string `json:"dob"`
	Address  *string `json:"address"`
	PlanID   *string `json:"planId"`
	JoinDate *string `json:"joinDate"`
	Status   *string `json:"status"`
	Photo    *string `json:"photo"`
}
