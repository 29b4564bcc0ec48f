package models

// Payment status values. Overdue is never set automatically; an operator
// flips it explicitly.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusOverdue = "overdue"
)

// Payment method values.
const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodOnline = "online"
)

// Payment represents a membership payment. InvoiceNumber is generated at
// creation time in the INV-YYYYMMDD-NNNN format.
type Payment struct {
	ID            string  `json:"id"`
	MemberID      string  `json:"memberId" binding:"required"`
	PlanID        string  `json:"planId"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" binding:"required,oneof=cash card online"`
	PaymentDate   string  `json:"paymentDate" binding:"required"`
	Status        string  `json:"status" binding:"required,oneof=paid pending overdue"`
	InvoiceNumber string  `json:"invoiceNumber"`
}

// PaymentPatch is a partial payment update; nil fields are left untouched.
type PaymentPatch struct {
	MemberID      *string  `json:"memberId"`
	PlanID        *string  `json:"planId"`
	Amount        *float64 `json:"amount"`
	PaymentMethod *string  `json:"paymentMethod"`
	PaymentDate   *string  `json:"paymentDate"`
	Status        *string  `json:"status"`
}
