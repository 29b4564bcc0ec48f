package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gym_crm_backend/internal/handlers"
	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/router"
	"gym_crm_backend/internal/services"
	"gym_crm_backend/internal/storage"
	"gym_crm_backend/internal/store"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var handlerNow = time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

// setupRouter wires every resource route on an unprotected group over a
// fresh file-backed store, so tests exercise the same handlers production
// serves without minting tokens.
func setupRouter(t *testing.T) (*gin.Engine, *store.GymStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend, err := storage.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	s, err := store.NewWithClock(backend, func() time.Time { return handlerNow })
	require.NoError(t, err)

	clock := func() time.Time { return handlerNow }
	reportService := services.NewReportService(s, clock)
	alertService := services.NewAlertService(s, clock)

	r := gin.New()
	api := r.Group("/api/v1")
	router.SetupResourceRoutes(api,
		handlers.NewGymProfileHandler(s),
		handlers.NewMemberHandler(s),
		handlers.NewPlanHandler(s),
		handlers.NewAttendanceHandler(s),
		handlers.NewPaymentHandler(s),
		handlers.NewInquiryHandler(s),
		handlers.NewExpenseHandler(s),
		handlers.NewReportHandler(reportService, alertService),
		handlers.NewExportHandler(s),
	)
	return r, s
}

func httpDo(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMemberCRUD(t *testing.T) {
	r, _ := setupRouter(t)

	// Create
	w := httpDo(r, "POST", "/api/v1/members", models.Member{
		Name: "Alice Green", Email: "alice@example.com", Phone: "555-777-8888", PlanID: "1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "2024-02-10", created.JoinDate)

	// List carries the derived membership block per member.
	w = httpDo(r, "GET", "/api/v1/members", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []struct {
			models.Member
			Membership models.MembershipStatusInfo `json:"membership"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 4, list.Total)
	require.NotEmpty(t, list.Data[0].Membership.Status)

	// Get by id
	w = httpDo(r, "GET", "/api/v1/members/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Patch one field; the rest survive.
	w = httpDo(r, "PATCH", "/api/v1/members/"+created.ID, gin.H{"phone": "555-000-1111"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "555-000-1111", updated.Phone)
	require.Equal(t, "Alice Green", updated.Name)

	// Delete, then a second delete 404s.
	w = httpDo(r, "DELETE", "/api/v1/members/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = httpDo(r, "DELETE", "/api/v1/members/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMemberValidation(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "POST", "/api/v1/members", gin.H{"name": "No Email", "phone": "555-777-8888", "planId": "1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Email is required")

	w = httpDo(r, "POST", "/api/v1/members", gin.H{"name": "Bad Email", "email": "not-an-email", "phone": "555-777-8888", "planId": "1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid email format")
}

func TestGymProfilePatchKeepsSiblings(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "PATCH", "/api/v1/gym-profile", gin.H{
		"bankDetails": gin.H{"bankName": "New Bank"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var profile models.GymProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	require.Equal(t, "New Bank", profile.BankDetails.BankName)
	require.Equal(t, "Elite Fitness Inc.", profile.BankDetails.AccountHolder)
}

func TestCheckInFlow(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "POST", "/api/v1/attendance/check-in", gin.H{"memberId": "1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var record models.AttendanceRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	require.Nil(t, record.CheckOut)

	// Second open check-in for the same member is rejected.
	w = httpDo(r, "POST", "/api/v1/attendance/check-in", gin.H{"memberId": "1"})
	require.Equal(t, http.StatusConflict, w.Code)

	// Unknown member 404s.
	w = httpDo(r, "POST", "/api/v1/attendance/check-in", gin.H{"memberId": "ghost"})
	require.Equal(t, http.StatusNotFound, w.Code)

	// Check out closes the record; a repeat 404s.
	w = httpDo(r, "POST", "/api/v1/attendance/"+record.ID+"/check-out", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var closed models.AttendanceRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &closed))
	require.NotNil(t, closed.CheckOut)
	w = httpDo(r, "POST", "/api/v1/attendance/"+record.ID+"/check-out", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentCreateGeneratesInvoice(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "POST", "/api/v1/payments", gin.H{
		"memberId": "1", "planId": "1", "amount": 49.99,
		"paymentMethod": "cash", "paymentDate": "2024-02-10", "status": "paid",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var payment models.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payment))
	require.Equal(t, "INV-20240210-0004", payment.InvoiceNumber)

	// Manual status flip to overdue.
	w = httpDo(r, "PATCH", "/api/v1/payments/"+payment.ID, gin.H{"status": "overdue"})
	require.Equal(t, http.StatusOK, w.Code)
	var flipped models.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &flipped))
	require.Equal(t, models.PaymentStatusOverdue, flipped.Status)
}

func TestPaymentInvoicePDF(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "GET", "/api/v1/payments/1/invoice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "INV-20240115-0001.pdf")
	require.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestInquiryNotesAndConversion(t *testing.T) {
	r, s := setupRouter(t)

	w := httpDo(r, "POST", "/api/v1/inquiries/1/notes", gin.H{"text": "Followed up by phone"})
	require.Equal(t, http.StatusOK, w.Code)
	var inquiry models.Inquiry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inquiry))
	require.Len(t, inquiry.Notes, 1)

	// Conversion requires an existing plan.
	w = httpDo(r, "POST", "/api/v1/inquiries/1/convert", gin.H{"planId": "no-such-plan"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "POST", "/api/v1/inquiries/1/convert", gin.H{"planId": "2"})
	require.Equal(t, http.StatusCreated, w.Code)
	var member models.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &member))
	require.Equal(t, "Sarah Williams", member.Name)
	require.Equal(t, "2", member.PlanID)

	converted, found := s.GetInquiryByID("1")
	require.True(t, found)
	require.Equal(t, models.InquiryStatusConverted, converted.Status)
}

func TestReportsEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "GET", "/api/v1/reports/financial-summary?period=year", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary models.FinancialSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.InDelta(t, 179.98, summary.TotalRevenue, 0.001)

	w = httpDo(r, "GET", "/api/v1/reports/financial-summary?period=eon", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "GET", "/api/v1/reports/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dashboard models.DashboardSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	require.Equal(t, 2, dashboard.ActiveMembersCount)
	require.Equal(t, 1, dashboard.PendingPaymentsCount)

	// Seed data on Feb 10: one pending payment plus John's monthly plan
	// ending Feb 15, in that order.
	w = httpDo(r, "GET", "/api/v1/alerts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var alerts struct {
		Data  []models.Alert `json:"data"`
		Total int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	require.Equal(t, 2, alerts.Total)
	require.Equal(t, models.AlertTypePendingPayment, alerts.Data[0].Type)
	require.Equal(t, models.AlertTypeMembershipExpiry, alerts.Data[1].Type)
}

func TestCSVExports(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "GET", "/api/v1/exports/members", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "members.csv")
	require.True(t, strings.HasPrefix(w.Body.String(), "Name,Email,Phone"))

	w = httpDo(r, "GET", "/api/v1/exports/financial-report", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "INV-20240115-0001")
}

func TestAuthProtectsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	backend, err := storage.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	s, err := store.New(backend)
	require.NoError(t, err)
	authService, err := services.NewAuthService("admin", "s3cret")
	require.NoError(t, err)

	r := gin.New()
	router.Setup(r, s, authService)

	// No token, no access.
	w := httpDo(r, "GET", "/api/v1/members", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Bad credentials rejected.
	w = httpDo(r, "POST", "/api/v1/auth/login", gin.H{"username": "admin", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Log in, then reuse the token.
	w = httpDo(r, "POST", "/api/v1/auth/login", gin.H{"username": "admin", "password": "s3cret"})
	require.Equal(t, http.StatusOK, w.Code)
	var auth services.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	require.NotEmpty(t, auth.AccessToken)

	req := httptest.NewRequest("GET", "/api/v1/members", nil)
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "admin")

	// A validly signed token without the operator role clears the auth
	// middleware but fails the role check.
	viewerToken, err := utils.GenerateAccessToken("intruder", "Viewer")
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/api/v1/members", nil)
	req.Header.Set("Authorization", "Bearer "+viewerToken)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}
