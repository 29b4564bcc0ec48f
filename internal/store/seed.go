package store

import "gym_crm_backend/internal/models"

// Storage keys, one per collection. The layouts persisted under these keys
// are stable across backends so an install can move between them.
const (
	KeyGymProfile = "gym_profile"
	KeyMembers    = "gym_members"
	KeyPlans      = "gym_plans"
	KeyAttendance = "gym_attendance"
	KeyPayments   = "gym_payments"
	KeyInquiries  = "gym_inquiries"
	KeyExpenses   = "gym_expenses"
)

// Seed data used when a storage key is absent or unparseable, keeping a fresh
// install reproducible.

func seedGymProfile() models.GymProfile {
	return models.GymProfile{
		Name:        "Elite Fitness Center",
		Logo:        "",
		Address:     "123 Fitness Street",
		City:        "Gym City",
		State:       "GC",
		Zip:         "12345",
		Phone:       "+1 (555) 123-4567",
		Email:       "info@elitefitness.com",
		Description: "Your premier destination for fitness and wellness",
		Website:     "www.elitefitness.com",
		BusinessHours: map[string]models.BusinessDay{
			"monday":    {Open: "06:00", Close: "22:00", Closed: false},
			"tuesday":   {Open: "06:00", Close: "22:00", Closed: false},
			"wednesday": {Open: "06:00", Close: "22:00", Closed: false},
			"thursday":  {Open: "06:00", Close: "22:00", Closed: false},
			"friday":    {Open: "06:00", Close: "22:00", Closed: false},
			"saturday":  {Open: "08:00", Close: "20:00", Closed: false},
			"sunday":    {Open: "08:00", Close: "20:00", Closed: true},
		},
		BankDetails: models.BankDetails{
			AccountHolder: "Elite Fitness Inc.",
			AccountNumber: "1234567890",
			BankName:      "Global Bank",
			IFSC:          "GB000123",
		},
	}
}

func seedMembers() []models.Member {
	return []models.Member{
		{ID: "1", Name: "John Doe", Email: "john@example.com", Phone: "555-111-2222", DOB: "1990-05-15", Address: "456 Member St", PlanID: "1", JoinDate: "2024-01-15", Status: models.MemberStatusActive},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Phone: "555-222-3333", DOB: "1992-08-22", Address: "789 Fitness Ave", PlanID: "2", JoinDate: "2024-02-01", Status: models.MemberStatusActive},
		{ID: "3", Name: "Mike Johnson", Email: "mike@example.com", Phone: "555-333-4444", DOB: "1988-03-10", Address: "321 Gym Rd", PlanID: "1", JoinDate: "2023-11-20", Status: models.MemberStatusInactive},
	}
}

func seedPlans() []models.Plan {
	return []models.Plan{
		{ID: "1", Name: "Monthly Basic", Duration: 1, Price: 49.99, Description: "Basic access", Features: []string{"Gym Access"}, IsActive: true},
		{ID: "2", Name: "Quarterly Premium", Duration: 3, Price: 129.99, Description: "Premium access", Features: []string{"Gym Access", "Classes"}, IsActive: true},
		{ID: "3", Name: "Yearly Elite", Duration: 12, Price: 449.99, Description: "All access", Features: []string{"All Features"}, IsActive: true},
	}
}

func seedAttendance() []models.AttendanceRecord {
	out1 := "2024-01-27T10:15:00"
	out2 := "2024-01-27T10:45:00"
	return []models.AttendanceRecord{
		{ID: "1", MemberID: "1", CheckIn: "2024-01-27T08:30:00", CheckOut: &out1},
		{ID: "2", MemberID: "2", CheckIn: "2024-01-27T09:00:00", CheckOut: &out2},
	}
}

func seedPayments() []models.Payment {
	return []models.Payment{
		{ID: "1", MemberID: "1", Amount: 49.99, PlanID: "1", PaymentMethod: models.PaymentMethodCard, PaymentDate: "2024-01-15", Status: models.PaymentStatusPaid, InvoiceNumber: "INV-20240115-0001"},
		{ID: "2", MemberID: "2", Amount: 129.99, PlanID: "2", PaymentMethod: models.PaymentMethodCash, PaymentDate: "2024-02-01", Status: models.PaymentStatusPaid, InvoiceNumber: "INV-20240201-0002"},
		{ID: "3", MemberID: "1", Amount: 49.99, PlanID: "1", PaymentMethod: models.PaymentMethodOnline, PaymentDate: "2024-02-15", Status: models.PaymentStatusPending, InvoiceNumber: "INV-20240215-0003"},
	}
}

func seedInquiries() []models.Inquiry {
	return []models.Inquiry{
		{ID: "1", Name: "Sarah Williams", Email: "sarah@example.com", Phone: "555-444-5555", InquiryType: "membership", Message: "Interested in quarterly", Source: "website", Status: models.InquiryStatusNew, InquiryDate: "2024-01-25", Notes: []models.InquiryNote{}},
		{ID: "2", Name: "Tom Brown", Email: "tom@example.com", Phone: "555-555-6666", InquiryType: "training", Message: "Personal trainer needed", Source: "referral", Status: models.InquiryStatusContacted, InquiryDate: "2024-01-24", Notes: []models.InquiryNote{{Text: "Called client", Date: "2024-01-25"}}},
	}
}

func seedExpenses() []models.Expense {
	return []models.Expense{
		{ID: "1", Category: "Rent", Amount: 2000, Description: "Monthly Rent", Date: "2024-01-01"},
		{ID: "2", Category: "Utilities", Amount: 450, Description: "Electric Bill", Date: "2024-01-05"},
		{ID: "3", Category: "Maintenance", Amount: 300, Description: "Cleaning", Date: "2024-01-10"},
	}
}
