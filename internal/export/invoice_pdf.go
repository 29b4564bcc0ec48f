package export

import (
	"fmt"
	"strings"

	"gym_crm_backend/internal/models"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// InvoiceData is everything the invoice PDF needs, resolved from a
// {GymProfile, Member, Payment, Plan} snapshot.
type InvoiceData struct {
	GymName    string
	GymAddress string
	GymCity    string
	GymPhone   string
	GymEmail   string

	InvoiceNumber string
	PaymentDate   string
	Status        string

	MemberName  string
	MemberEmail string
	MemberPhone string

	Description string
	Amount      float64

	BankDetails string
}

// BuildInvoiceData assembles the render model. The plan may be nil when the
// payment references a deleted plan; the line item then falls back to a
// generic membership label with a one-month duration.
func BuildInvoiceData(profile models.GymProfile, member models.Member, payment models.Payment, plan *models.Plan) InvoiceData {
	planName := "Membership"
	duration := 1
	if plan != nil {
		planName = plan.Name
		duration = plan.Duration
	}

	bank := ""
	if profile.BankDetails.AccountNumber != "" {
		bank = fmt.Sprintf("%s · %s · Acct %s · IFSC %s",
			profile.BankDetails.AccountHolder,
			profile.BankDetails.BankName,
			profile.BankDetails.AccountNumber,
			profile.BankDetails.IFSC,
		)
	}

	return InvoiceData{
		GymName:       profile.Name,
		GymAddress:    profile.Address,
		GymCity:       fmt.Sprintf("%s, %s %s", profile.City, profile.State, profile.Zip),
		GymPhone:      "Phone: " + profile.Phone,
		GymEmail:      "Email: " + profile.Email,
		InvoiceNumber: payment.InvoiceNumber,
		PaymentDate:   payment.PaymentDate,
		Status:        strings.ToUpper(payment.Status),
		MemberName:    member.Name,
		MemberEmail:   member.Email,
		MemberPhone:   member.Phone,
		Description:   fmt.Sprintf("%s - %d Month(s)", planName, duration),
		Amount:        payment.Amount,
		BankDetails:   bank,
	}
}

// InvoicePDF renders the invoice and returns the PDF bytes.
func InvoicePDF(data InvoiceData) ([]byte, error) {
	m := maroto.New()

	// Header: gym identity on the left, invoice meta on the right.
	m.AddRow(12,
		text.NewCol(8, data.GymName, props.Text{Size: 20, Style: fontstyle.Bold}),
		text.NewCol(4, "INVOICE", props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(24,
		col.New(8).Add(
			text.New(data.GymAddress, props.Text{Size: 9, Top: 0}),
			text.New(data.GymCity, props.Text{Size: 9, Top: 4}),
			text.New(data.GymPhone, props.Text{Size: 9, Top: 8}),
			text.New(data.GymEmail, props.Text{Size: 9, Top: 12}),
		),
		col.New(4).Add(
			text.New("Invoice #: "+data.InvoiceNumber, props.Text{Size: 9, Top: 0, Align: align.Right}),
			text.New("Date: "+data.PaymentDate, props.Text{Size: 9, Top: 4, Align: align.Right}),
			text.New("Status: "+data.Status, props.Text{Size: 9, Top: 8, Align: align.Right}),
		),
	)

	m.AddRow(22, col.New(12).Add(
		text.New("Bill To:", props.Text{Size: 11, Style: fontstyle.Bold}),
		text.New(data.MemberName, props.Text{Size: 9, Top: 6}),
		text.New(data.MemberEmail, props.Text{Size: 9, Top: 10}),
		text.New(data.MemberPhone, props.Text{Size: 9, Top: 14}),
	))

	m.AddRow(8,
		text.NewCol(8, "Description", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(4, "Amount", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(10,
		text.NewCol(8, data.Description, props.Text{Size: 9}),
		text.NewCol(4, fmt.Sprintf("$%.2f", data.Amount), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(4, line.NewCol(12))
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total:", props.Text{Size: 11, Style: fontstyle.Bold}),
		text.NewCol(2, fmt.Sprintf("$%.2f", data.Amount), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
	)

	if data.BankDetails != "" {
		m.AddRow(12, text.NewCol(12, data.BankDetails, props.Text{Size: 8, Top: 4}))
	}
	m.AddRow(14, text.NewCol(12, "Thank you for your business!", props.Text{Size: 9, Top: 6, Align: align.Center}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
