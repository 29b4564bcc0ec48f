package models

// Inquiry status values.
const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusConverted = "converted"
)

// InquiryNote is a dated follow-up note attached to an inquiry.
type InquiryNote struct {
	Text string `json:"text"`
	Date string `json:"date"`
}

// Inquiry represents a prospect inquiry. Converting an inquiry creates a
// member from its contact details and flips the status to converted.
type Inquiry struct {
	ID          string        `json:"id"`
	Name        string        `json:"name" binding:"required"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	InquiryType string        `json:"inquiryType"`
	Message     string        `json:"message,omitempty"`
	Source      string        `json:"source,omitempty"`
	Status      string        `json:"status"`
	InquiryDate string        `json:"inquiryDate"`
	Notes       []InquiryNote `json:"notes"`
}

// InquiryPatch is a partial inquiry update; nil fields are left untouched.
type InquiryPatch struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	InquiryType *string `json:"inquiryType"`
	Message     *string `json:"message"`
	Source      *string `json:"source"`
	Status      *string `json:"status"`
	InquiryDate *string `json:"inquiryDate"`
}
