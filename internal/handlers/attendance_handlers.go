package handlers

import (
	"net/http"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/store"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler holds the domain store.
type AttendanceHandler struct {
	store *store.GymStore
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(s *store.GymStore) *AttendanceHandler {
	return &AttendanceHandler{store: s}
}

type checkInRequest struct {
	MemberID string `json:"memberId" binding:"required"`
}

// CheckIn opens an attendance record for a member. Rejecting a second open
// check-in for the same member on the same day is handled here, not in the
// store.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	if _, found := h.store.GetMemberByID(req.MemberID); !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", ""))
		return
	}
	for _, a := range h.store.Attendance() {
		if a.MemberID == req.MemberID && a.CheckOut == nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Member is already checked in.", ""))
			return
		}
	}

	record, err := h.store.CheckIn(req.MemberID)
	if err != nil {
		utils.LogError(err, "CheckIn: Failed to persist attendance")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to check in.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, record)
}

// CheckOut closes an open attendance record.
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	id := c.Param("id")
	applied, err := h.store.CheckOut(id)
	if err != nil {
		utils.LogError(err, "CheckOut: Failed to persist attendance "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to check out.", "Internal error"))
		return
	}
	if !applied {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Attendance record not found or already checked out.", ""))
		return
	}
	record, _ := h.store.GetAttendanceByID(id)
	c.JSON(http.StatusOK, record)
}

// GetAttendance returns the attendance log in insertion order.
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	records := h.store.Attendance()
	c.JSON(http.StatusOK, gin.H{"data": records, "total": len(records)})
}

// CreateAttendance appends a manual attendance correction.
func (h *AttendanceHandler) CreateAttendance(c *gin.Context) {
	var record models.AttendanceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	stored, err := h.store.AddAttendance(record)
	if err != nil {
		utils.LogError(err, "CreateAttendance: Failed to persist attendance")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create attendance record.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// UpdateAttendance handles a partial attendance update.
func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	id := c.Param("id")
	var patch models.AttendancePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	found, err := h.store.UpdateAttendance(id, patch)
	if err != nil {
		utils.LogError(err, "UpdateAttendance: Failed to persist attendance "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update attendance record.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Attendance record not found to update.", ""))
		return
	}
	record, _ := h.store.GetAttendanceByID(id)
	c.JSON(http.StatusOK, record)
}

// GetAttendanceByID handles fetching a single attendance record by ID.
func (h *AttendanceHandler) GetAttendanceByID(c *gin.Context) {
	id := c.Param("id")
	record, found := h.store.GetAttendanceByID(id)
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Attendance record not found.", ""))
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteAttendance handles deleting an attendance record.
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	id := c.Param("id")
	found, err := h.store.DeleteAttendance(id)
	if err != nil {
		utils.LogError(err, "DeleteAttendance: Failed to persist attendance list")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete attendance record.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Attendance record not found to delete.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance record deleted successfully"})
}
