package handlers

import (
	"net/http"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/store"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InquiryHandler holds the domain store.
type InquiryHandler struct {
	store *store.GymStore
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(s *store.GymStore) *InquiryHandler {
	return &InquiryHandler{store: s}
}

type addNoteRequest struct {
	Text string `json:"text" binding:"required"`
}

type convertInquiryRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

// CreateInquiry registers a new walk-in or phone inquiry. Status and the
// inquiry date are always set server-side.
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var inquiry models.Inquiry
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	if utils.IsEmpty(inquiry.Name) {
		utils.RespondValidationFailed(c, "Name is required")
		return
	}

	stored, err := h.store.AddInquiry(inquiry)
	if err != nil {
		utils.LogError(err, "CreateInquiry: Failed to persist inquiry")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create inquiry.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// GetInquiries returns all inquiries in insertion order.
func (h *InquiryHandler) GetInquiries(c *gin.Context) {
	inquiries := h.store.Inquiries()
	c.JSON(http.StatusOK, gin.H{"data": inquiries, "total": len(inquiries)})
}

// GetInquiryByID handles fetching a single inquiry by ID.
func (h *InquiryHandler) GetInquiryByID(c *gin.Context) {
	id := c.Param("id")
	inquiry, found := h.store.GetInquiryByID(id)
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inquiry not found.", ""))
		return
	}
	c.JSON(http.StatusOK, inquiry)
}

// UpdateInquiry handles a partial inquiry update.
func (h *InquiryHandler) UpdateInquiry(c *gin.Context) {
	id := c.Param("id")
	var patch models.InquiryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	found, err := h.store.UpdateInquiry(id, patch)
	if err != nil {
		utils.LogError(err, "UpdateInquiry: Failed to persist inquiry "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update inquiry.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inquiry not found to update.", ""))
		return
	}
	inquiry, _ := h.store.GetInquiryByID(id)
	c.JSON(http.StatusOK, inquiry)
}

// DeleteInquiry handles deleting an inquiry.
func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	id := c.Param("id")
	found, err := h.store.DeleteInquiry(id)
	if err != nil {
		utils.LogError(err, "DeleteInquiry: Failed to persist inquiry list")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete inquiry.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inquiry not found to delete.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted successfully"})
}

// AddNote appends a dated follow-up note to an inquiry.
func (h *InquiryHandler) AddNote(c *gin.Context) {
	id := c.Param("id")
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	found, err := h.store.AddInquiryNote(id, req.Text)
	if err != nil {
		utils.LogError(err, "AddNote: Failed to persist inquiry "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to add note.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inquiry not found.", ""))
		return
	}
	inquiry, _ := h.store.GetInquiryByID(id)
	c.JSON(http.StatusOK, inquiry)
}

// ConvertToMember creates a member from the inquiry's contact details and
// marks the inquiry as converted.
func (h *InquiryHandler) ConvertToMember(c *gin.Context) {
	id := c.Param("id")
	var req convertInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	if _, ok := h.store.GetPlanByID(req.PlanID); !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Plan not found.", "planId does not match any plan"))
		return
	}

	member, found, err := h.store.ConvertInquiryToMember(id, req.PlanID)
	if err != nil {
		utils.LogError(err, "ConvertToMember: Failed to persist conversion of inquiry "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to convert inquiry.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inquiry not found.", ""))
		return
	}
	c.JSON(http.StatusCreated, member)
}
