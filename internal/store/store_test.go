package store

import (
	"testing"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/storage"

	"github.com/stretchr/testify/require"
)

// fixedClock pins now to a known instant so generated dates and invoice
// numbers are deterministic.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testNow = time.Date(2024, 2, 10, 12, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*GymStore, storage.Backend) {
	t.Helper()
	backend, err := storage.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	s, err := NewWithClock(backend, fixedClock(testNow))
	require.NoError(t, err)
	return s, backend
}

func TestNewSeedsEmptyBackend(t *testing.T) {
	s, backend := newTestStore(t)

	require.Equal(t, "Elite Fitness Center", s.GymProfile().Name)
	require.Len(t, s.Members(), 3)
	require.Len(t, s.Plans(), 3)
	require.Len(t, s.Attendance(), 2)
	require.Len(t, s.Payments(), 3)
	require.Len(t, s.Inquiries(), 2)
	require.Len(t, s.Expenses(), 3)

	// Hydration persists the seed data immediately.
	data, err := backend.Get(KeyMembers)
	require.NoError(t, err)
	require.Contains(t, string(data), "John Doe")
}

func TestNewFallsBackOnMalformedBlob(t *testing.T) {
	backend, err := storage.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, backend.Set(KeyPlans, []byte("{not json")))

	s, err := NewWithClock(backend, fixedClock(testNow))
	require.NoError(t, err)
	require.Len(t, s.Plans(), 3)

	// The seed replaced the corrupt blob on disk.
	data, err := backend.Get(KeyPlans)
	require.NoError(t, err)
	require.Contains(t, string(data), "Monthly Basic")
}

func TestWriteThroughSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	backend, err := storage.NewFileBackend(dir)
	require.NoError(t, err)
	s, err := NewWithClock(backend, fixedClock(testNow))
	require.NoError(t, err)

	added, err := s.AddMember(models.Member{Name: "New Member", Email: "new@example.com", Status: models.MemberStatusActive})
	require.NoError(t, err)

	// A second store over the same directory sees the write.
	backend2, err := storage.NewFileBackend(dir)
	require.NoError(t, err)
	s2, err := NewWithClock(backend2, fixedClock(testNow))
	require.NoError(t, err)

	got, found := s2.GetMemberByID(added.ID)
	require.True(t, found)
	require.Equal(t, "New Member", got.Name)
}

func TestAddMemberDefaultsJoinDate(t *testing.T) {
	s, _ := newTestStore(t)

	added, err := s.AddMember(models.Member{Name: "Walk In"})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)
	require.Equal(t, "2024-02-10", added.JoinDate)

	explicit, err := s.AddMember(models.Member{Name: "Backdated", JoinDate: "2024-01-01"})
	require.NoError(t, err)
	require.Equal(t, "2024-01-01", explicit.JoinDate)
}

func TestUpdateMemberMergesOnlyProvidedFields(t *testing.T) {
	s, _ := newTestStore(t)

	phone := "555-999-0000"
	found, err := s.UpdateMember("1", models.MemberPatch{Phone: &phone})
	require.NoError(t, err)
	require.True(t, found)

	got, ok := s.GetMemberByID("1")
	require.True(t, ok)
	require.Equal(t, phone, got.Phone)
	// Untouched fields survive the patch.
	require.Equal(t, "John Doe", got.Name)
	require.Equal(t, "john@example.com", got.Email)
}

func TestUpdateAndDeleteUnknownIDNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	name := "Ghost"
	found, err := s.UpdateMember("does-not-exist", models.MemberPatch{Name: &name})
	require.NoError(t, err)
	require.False(t, found)

	found, err = s.DeleteMember("does-not-exist")
	require.NoError(t, err)
	require.False(t, found)
	require.Len(t, s.Members(), 3)
}

func TestDeleteMemberLeavesRelatedRecords(t *testing.T) {
	s, _ := newTestStore(t)

	found, err := s.DeleteMember("1")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, s.Members(), 2)

	// Attendance and payments for the deleted member remain.
	attendance := s.Attendance()
	require.Equal(t, "1", attendance[0].MemberID)
	payments := s.Payments()
	require.Equal(t, "1", payments[0].MemberID)
}

func TestAddPlanDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	added, err := s.AddPlan(models.Plan{Name: "Day Pass", Duration: 1, Price: 9.99})
	require.NoError(t, err)
	require.True(t, added.IsActive)
	require.NotNil(t, added.Features)
	require.Empty(t, added.Features)
}

func TestCheckInAndCheckOut(t *testing.T) {
	s, _ := newTestStore(t)

	record, err := s.CheckIn("2")
	require.NoError(t, err)
	require.Equal(t, "2024-02-10T12:30:00", record.CheckIn)
	require.Nil(t, record.CheckOut)

	found, err := s.CheckOut(record.ID)
	require.NoError(t, err)
	require.True(t, found)

	got, ok := s.GetAttendanceByID(record.ID)
	require.True(t, ok)
	require.NotNil(t, got.CheckOut)
	require.Equal(t, "2024-02-10T12:30:00", *got.CheckOut)

	// Closing twice is a no-op.
	found, err = s.CheckOut(record.ID)
	require.NoError(t, err)
	require.False(t, found)
}

func TestAddPaymentGeneratesInvoiceNumber(t *testing.T) {
	s, _ := newTestStore(t)

	// Three seeded payments, so the next sequence number is 4, stamped with
	// the creation date rather than the payment date.
	added, err := s.AddPayment(models.Payment{
		MemberID:      "1",
		PlanID:        "1",
		Amount:        49.99,
		PaymentMethod: models.PaymentMethodCash,
		PaymentDate:   "2024-01-01",
		Status:        models.PaymentStatusPaid,
	})
	require.NoError(t, err)
	require.Equal(t, "INV-20240210-0004", added.InvoiceNumber)

	next, err := s.AddPayment(models.Payment{
		MemberID:      "2",
		PlanID:        "2",
		Amount:        129.99,
		PaymentMethod: models.PaymentMethodCard,
		PaymentDate:   "2024-02-10",
		Status:        models.PaymentStatusPending,
	})
	require.NoError(t, err)
	require.Equal(t, "INV-20240210-0005", next.InvoiceNumber)
}

func TestInvoiceNumbersCanRepeatAfterDelete(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.AddPayment(models.Payment{MemberID: "1", Amount: 10, Status: models.PaymentStatusPaid})
	require.NoError(t, err)

	found, err := s.DeletePayment(first.ID)
	require.NoError(t, err)
	require.True(t, found)

	// Sequence derives from collection size, so the number is reused.
	second, err := s.AddPayment(models.Payment{MemberID: "1", Amount: 10, Status: models.PaymentStatusPaid})
	require.NoError(t, err)
	require.Equal(t, first.InvoiceNumber, second.InvoiceNumber)
}

func TestAddInquiryForcesStatusAndDate(t *testing.T) {
	s, _ := newTestStore(t)

	added, err := s.AddInquiry(models.Inquiry{
		Name:   "Curious Carl",
		Status: models.InquiryStatusConverted, // ignored
	})
	require.NoError(t, err)
	require.Equal(t, models.InquiryStatusNew, added.Status)
	require.Equal(t, "2024-02-10", added.InquiryDate)
	require.NotNil(t, added.Notes)
	require.Empty(t, added.Notes)
}

func TestAddInquiryNote(t *testing.T) {
	s, _ := newTestStore(t)

	found, err := s.AddInquiryNote("1", "Left a voicemail")
	require.NoError(t, err)
	require.True(t, found)

	inquiry, ok := s.GetInquiryByID("1")
	require.True(t, ok)
	require.Len(t, inquiry.Notes, 1)
	require.Equal(t, "Left a voicemail", inquiry.Notes[0].Text)
	require.Equal(t, "2024-02-10T12:30:00", inquiry.Notes[0].Date)
}

func TestConvertInquiryToMember(t *testing.T) {
	s, _ := newTestStore(t)

	member, found, err := s.ConvertInquiryToMember("1", "2")
	require.NoError(t, err)
	require.True(t, found)

	require.Equal(t, "Sarah Williams", member.Name)
	require.Equal(t, "sarah@example.com", member.Email)
	require.Equal(t, "2", member.PlanID)
	require.Equal(t, "2024-02-10", member.JoinDate)
	require.Equal(t, models.MemberStatusActive, member.Status)
	require.Equal(t, "N/A", member.Address)

	stored, ok := s.GetMemberByID(member.ID)
	require.True(t, ok)
	require.Equal(t, member, stored)

	inquiry, ok := s.GetInquiryByID("1")
	require.True(t, ok)
	require.Equal(t, models.InquiryStatusConverted, inquiry.Status)

	_, found, err = s.ConvertInquiryToMember("missing", "1")
	require.NoError(t, err)
	require.False(t, found)
}

func TestUpdateGymProfileDeepMerge(t *testing.T) {
	s, _ := newTestStore(t)

	bank := "New Bank"
	saturday := models.BusinessDay{Open: "09:00", Close: "18:00", Closed: false}
	updated, err := s.UpdateGymProfile(models.GymProfilePatch{
		BankDetails:   &models.BankDetailsPatch{BankName: &bank},
		BusinessHours: map[string]models.BusinessDay{"saturday": saturday},
	})
	require.NoError(t, err)

	// Sibling bank fields survive a single-field patch.
	require.Equal(t, "New Bank", updated.BankDetails.BankName)
	require.Equal(t, "Elite Fitness Inc.", updated.BankDetails.AccountHolder)
	require.Equal(t, "1234567890", updated.BankDetails.AccountNumber)

	// Only the patched weekday changes.
	require.Equal(t, saturday, updated.BusinessHours["saturday"])
	require.Equal(t, "06:00", updated.BusinessHours["monday"].Open)
	require.True(t, updated.BusinessHours["sunday"].Closed)
}

func TestSnapshotsAreCopies(t *testing.T) {
	s, _ := newTestStore(t)

	members := s.Members()
	members[0].Name = "Mutated"
	got, ok := s.GetMemberByID(members[0].ID)
	require.True(t, ok)
	require.Equal(t, "John Doe", got.Name)

	profile := s.GymProfile()
	profile.BusinessHours["monday"] = models.BusinessDay{Closed: true}
	require.False(t, s.GymProfile().BusinessHours["monday"].Closed)

	// Nested slices are copies as well, not shared backing arrays.
	plans := s.Plans()
	plans[0].Features[0] = "Scribbled"
	require.Equal(t, "Gym Access", s.Plans()[0].Features[0])

	inquiries := s.Inquiries()
	inquiries[1].Notes[0].Text = "Scribbled"
	require.Equal(t, "Called client", s.Inquiries()[1].Notes[0].Text)

	plan, ok := s.GetPlanByID("1")
	require.True(t, ok)
	plan.Features[0] = "Scribbled"
	got2, _ := s.GetPlanByID("1")
	require.Equal(t, "Gym Access", got2.Features[0])

	inquiry, ok := s.GetInquiryByID("2")
	require.True(t, ok)
	inquiry.Notes[0].Text = "Scribbled"
	gotInquiry, _ := s.GetInquiryByID("2")
	require.Equal(t, "Called client", gotInquiry.Notes[0].Text)
}

func TestAddExpenseDefaultsDate(t *testing.T) {
	s, _ := newTestStore(t)

	added, err := s.AddExpense(models.Expense{Category: "Equipment", Amount: 150})
	require.NoError(t, err)
	require.Equal(t, "2024-02-10", added.Date)
}
