package handlers

import (
	"bytes"
	"net/http"

	"gym_crm_backend/internal/export"
	"gym_crm_backend/internal/store"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves CSV downloads of the store's collections.
type ExportHandler struct {
	store *store.GymStore
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(s *store.GymStore) *ExportHandler {
	return &ExportHandler{store: s}
}

func (h *ExportHandler) sendCSV(c *gin.Context, filename string, build func(w *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := build(&buf); err != nil {
		utils.LogError(err, "Export: Failed to build "+filename)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build export.", "Internal error"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ExportMembers downloads the member list as CSV.
func (h *ExportHandler) ExportMembers(c *gin.Context) {
	h.sendCSV(c, "members.csv", func(w *bytes.Buffer) error {
		return export.MembersCSV(w, h.store.Members())
	})
}

// ExportAttendance downloads attendance records as CSV.
func (h *ExportHandler) ExportAttendance(c *gin.Context) {
	h.sendCSV(c, "attendance.csv", func(w *bytes.Buffer) error {
		return export.AttendanceCSV(w, h.store.Attendance(), h.store.Members())
	})
}

// ExportPayments downloads the payment ledger as CSV.
func (h *ExportHandler) ExportPayments(c *gin.Context) {
	h.sendCSV(c, "payments.csv", func(w *bytes.Buffer) error {
		return export.PaymentsCSV(w, h.store.Payments(), h.store.Members(), h.store.Plans())
	})
}

// ExportInquiries downloads the inquiry list as CSV.
func (h *ExportHandler) ExportInquiries(c *gin.Context) {
	h.sendCSV(c, "inquiries.csv", func(w *bytes.Buffer) error {
		return export.InquiriesCSV(w, h.store.Inquiries())
	})
}

// ExportFinancialReport downloads the combined revenue and expense rows as
// CSV.
func (h *ExportHandler) ExportFinancialReport(c *gin.Context) {
	h.sendCSV(c, "financial_report.csv", func(w *bytes.Buffer) error {
		return export.FinancialReportCSV(w, h.store.Payments(), h.store.Expenses())
	})
}
