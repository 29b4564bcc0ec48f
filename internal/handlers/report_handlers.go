package handlers

import (
	"errors"
	"net/http"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves financial aggregates, dashboard counters and the
// derived alert feed.
type ReportHandler struct {
	reports services.ReportService
	alerts  services.AlertService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports services.ReportService, alerts services.AlertService) *ReportHandler {
	return &ReportHandler{reports: reports, alerts: alerts}
}

// periodParam reads the ?period query, defaulting to month.
func periodParam(c *gin.Context) string {
	return c.DefaultQuery("period", services.PeriodMonth)
}

// GetDashboardSummary returns the landing-page counters.
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.DashboardSummary())
}

// GetFinancialSummary returns revenue, expenses, profit and margin for the
// requested period.
func (h *ReportHandler) GetFinancialSummary(c *gin.Context) {
	summary, err := h.reports.FinancialSummary(periodParam(c))
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid period. Use today, week, month, quarter or year.", ""))
			return
		}
		utils.LogError(err, "GetFinancialSummary: report failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build report.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetRevenueByPlan returns the period's paid revenue broken down per plan.
func (h *ReportHandler) GetRevenueByPlan(c *gin.Context) {
	rows, err := h.reports.RevenueByPlan(periodParam(c))
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid period. Use today, week, month, quarter or year.", ""))
			return
		}
		utils.LogError(err, "GetRevenueByPlan: report failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build report.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "total": len(rows)})
}

// GetExpensesByCategory returns the period's expenses grouped by category.
func (h *ReportHandler) GetExpensesByCategory(c *gin.Context) {
	rows, err := h.reports.ExpensesByCategory(periodParam(c))
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid period. Use today, week, month, quarter or year.", ""))
			return
		}
		utils.LogError(err, "GetExpensesByCategory: report failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build report.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "total": len(rows)})
}

// GetMembersPerPlan returns how many members reference each plan.
func (h *ReportHandler) GetMembersPerPlan(c *gin.Context) {
	rows := h.reports.MembersPerPlan()
	c.JSON(http.StatusOK, gin.H{"data": rows, "total": len(rows)})
}

// GetAlerts returns the derived notification list: pending payments first,
// then memberships ending soon.
func (h *ReportHandler) GetAlerts(c *gin.Context) {
	alerts := h.alerts.Alerts()
	c.JSON(http.StatusOK, gin.H{"data": alerts, "total": len(alerts)})
}
