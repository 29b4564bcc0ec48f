package handlers

import (
	"net/http"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/services"
	"gym_crm_backend/internal/store"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MemberHandler holds the domain store.
type MemberHandler struct {
	store *store.GymStore
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(s *store.GymStore) *MemberHandler {
	return &MemberHandler{store: s}
}

// memberWithStatus pairs a member with its derived membership status.
type memberWithStatus struct {
	models.Member
	Membership models.MembershipStatusInfo `json:"membership"`
}

func validateMemberInput(c *gin.Context, m models.Member) bool {
	if utils.IsEmpty(m.Email) {
		utils.RespondValidationFailed(c, "Email is required")
		return false
	}
	if !utils.IsValidEmail(m.Email) {
		utils.RespondValidationFailed(c, "Invalid email format")
		return false
	}
	if utils.IsEmpty(m.Phone) {
		utils.RespondValidationFailed(c, "Phone is required")
		return false
	}
	if !utils.IsValidPhone(m.Phone) {
		utils.RespondValidationFailed(c, "Invalid phone format")
		return false
	}
	if utils.IsEmpty(m.PlanID) {
		utils.RespondValidationFailed(c, "Membership plan is required")
		return false
	}
	return true
}

// CreateMember handles the creation of a new member.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var member models.Member
	if err := c.ShouldBindJSON(&member); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	if !validateMemberInput(c, member) {
		return
	}

	stored, err := h.store.AddMember(member)
	if err != nil {
		utils.LogError(err, "CreateMember: Failed to persist member")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create member.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// GetMembers returns all members, each enriched with its derived membership
// status. The status is recomputed against today's date on every request.
func (h *MemberHandler) GetMembers(c *gin.Context) {
	members := h.store.Members()
	plans := h.store.Plans()
	now := time.Now()

	out := make([]memberWithStatus, 0, len(members))
	for _, m := range members {
		out = append(out, memberWithStatus{
			Member:     m,
			Membership: services.GetMembershipStatus(&m, plans, now),
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out, "total": len(out)})
}

// GetMemberByID handles fetching a single member by ID.
func (h *MemberHandler) GetMemberByID(c *gin.Context) {
	id := c.Param("id")
	member, found := h.store.GetMemberByID(id)
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", ""))
		return
	}
	c.JSON(http.StatusOK, memberWithStatus{
		Member:     member,
		Membership: services.GetMembershipStatus(&member, h.store.Plans(), time.Now()),
	})
}

// UpdateMember handles a partial member update.
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id := c.Param("id")
	var patch models.MemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	if patch.Email != nil && !utils.IsValidEmail(*patch.Email) {
		utils.RespondValidationFailed(c, "Invalid email format")
		return
	}
	if patch.Phone != nil && !utils.IsValidPhone(*patch.Phone) {
		utils.RespondValidationFailed(c, "Invalid phone format")
		return
	}

	found, err := h.store.UpdateMember(id, patch)
	if err != nil {
		utils.LogError(err, "UpdateMember: Failed to persist member "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update member.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found to update.", ""))
		return
	}
	member, _ := h.store.GetMemberByID(id)
	c.JSON(http.StatusOK, member)
}

// DeleteMember handles deleting a member. Attendance and payment history for
// the member is kept.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id := c.Param("id")
	found, err := h.store.DeleteMember(id)
	if err != nil {
		utils.LogError(err, "DeleteMember: Failed to persist member list")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete member.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found to delete.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
