package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"gym_crm_backend/internal/models"
)

// CSV serializers for the admin console's export buttons. They consume
// immutable snapshots and never touch the store. Records referencing deleted
// members or plans render an "Unknown" fallback instead of failing.

func writeAll(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

func memberName(members []models.Member, id string) string {
	for _, m := range members {
		if m.ID == id {
			return m.Name
		}
	}
	return "Unknown"
}

func planName(plans []models.Plan, id string) string {
	for _, p := range plans {
		if p.ID == id {
			return p.Name
		}
	}
	return "Unknown"
}

// MembersCSV writes the member list.
func MembersCSV(w io.Writer, members []models.Member) error {
	rows := [][]string{{"Name", "Email", "Phone", "Date of Birth", "Address", "Join Date", "Status"}}
	for _, m := range members {
		rows = append(rows, []string{m.Name, m.Email, m.Phone, m.DOB, m.Address, m.JoinDate, m.Status})
	}
	return writeAll(w, rows)
}

// AttendanceCSV writes the attendance log with member names resolved.
func AttendanceCSV(w io.Writer, attendance []models.AttendanceRecord, members []models.Member) error {
	rows := [][]string{{"Member Name", "Check In", "Check Out"}}
	for _, a := range attendance {
		checkOut := "Not checked out"
		if a.CheckOut != nil {
			checkOut = *a.CheckOut
		}
		rows = append(rows, []string{memberName(members, a.MemberID), a.CheckIn, checkOut})
	}
	return writeAll(w, rows)
}

// PaymentsCSV writes the payment list with member and plan names resolved.
func PaymentsCSV(w io.Writer, payments []models.Payment, members []models.Member, plans []models.Plan) error {
	rows := [][]string{{"Invoice Number", "Member Name", "Plan", "Amount", "Payment Date", "Payment Method", "Status"}}
	for _, p := range payments {
		rows = append(rows, []string{
			p.InvoiceNumber,
			memberName(members, p.MemberID),
			planName(plans, p.PlanID),
			fmt.Sprintf("$%.2f", p.Amount),
			p.PaymentDate,
			p.PaymentMethod,
			p.Status,
		})
	}
	return writeAll(w, rows)
}

// InquiriesCSV writes the inquiry list.
func InquiriesCSV(w io.Writer, inquiries []models.Inquiry) error {
	rows := [][]string{{"Name", "Email", "Phone", "Type", "Source", "Status", "Date"}}
	for _, q := range inquiries {
		rows = append(rows, []string{q.Name, q.Email, q.Phone, q.InquiryType, q.Source, q.Status, q.InquiryDate})
	}
	return writeAll(w, rows)
}

// FinancialReportCSV writes a combined ledger of payments and expenses.
func FinancialReportCSV(w io.Writer, payments []models.Payment, expenses []models.Expense) error {
	rows := [][]string{{"Type", "Date", "Reference", "Status", "Amount"}}
	for _, p := range payments {
		rows = append(rows, []string{"payment", p.PaymentDate, p.InvoiceNumber, p.Status, fmt.Sprintf("%.2f", p.Amount)})
	}
	for _, e := range expenses {
		rows = append(rows, []string{"expense", e.Date, e.Category, "", fmt.Sprintf("%.2f", e.Amount)})
	}
	return writeAll(w, rows)
}
