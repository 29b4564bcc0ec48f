package handlers

import (
	"net/http"

	"gym_crm_backend/internal/export"
	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/store"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler holds the domain store.
type PaymentHandler struct {
	store *store.GymStore
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(s *store.GymStore) *PaymentHandler {
	return &PaymentHandler{store: s}
}

// CreatePayment records a payment. The invoice number is generated by the
// store from the creation date and the running count.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	stored, err := h.store.AddPayment(payment)
	if err != nil {
		utils.LogError(err, "CreatePayment: Failed to persist payment")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create payment.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// GetPayments returns all payments in insertion order.
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	payments := h.store.Payments()
	c.JSON(http.StatusOK, gin.H{"data": payments, "total": len(payments)})
}

// GetPaymentByID handles fetching a single payment by ID.
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id := c.Param("id")
	payment, found := h.store.GetPaymentByID(id)
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Payment not found.", ""))
		return
	}
	c.JSON(http.StatusOK, payment)
}

// UpdatePayment handles a partial payment update, including the manual
// status flips between pending, paid and overdue.
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id := c.Param("id")
	var patch models.PaymentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	found, err := h.store.UpdatePayment(id, patch)
	if err != nil {
		utils.LogError(err, "UpdatePayment: Failed to persist payment "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update payment.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Payment not found to update.", ""))
		return
	}
	payment, _ := h.store.GetPaymentByID(id)
	c.JSON(http.StatusOK, payment)
}

// DeletePayment handles deleting a payment.
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id := c.Param("id")
	found, err := h.store.DeletePayment(id)
	if err != nil {
		utils.LogError(err, "DeletePayment: Failed to persist payment list")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete payment.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Payment not found to delete.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}

// GetPaymentInvoice renders the payment's invoice as a PDF download.
func (h *PaymentHandler) GetPaymentInvoice(c *gin.Context) {
	id := c.Param("id")
	payment, found := h.store.GetPaymentByID(id)
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Payment not found.", ""))
		return
	}

	member, _ := h.store.GetMemberByID(payment.MemberID)
	var plan *models.Plan
	if p, ok := h.store.GetPlanByID(payment.PlanID); ok {
		plan = &p
	}

	data := export.BuildInvoiceData(h.store.GymProfile(), member, payment, plan)
	pdf, err := export.InvoicePDF(data)
	if err != nil {
		utils.LogError(err, "GetPaymentInvoice: Failed to render invoice "+payment.InvoiceNumber)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to render invoice.", "Internal error"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+payment.InvoiceNumber+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
