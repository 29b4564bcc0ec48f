package handlers

import (
	"net/http"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/store"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PlanHandler holds the domain store.
type PlanHandler struct {
	store *store.GymStore
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(s *store.GymStore) *PlanHandler {
	return &PlanHandler{store: s}
}

// CreatePlan handles the creation of a new plan. New plans are always active.
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var plan models.Plan
	if err := c.ShouldBindJSON(&plan); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	stored, err := h.store.AddPlan(plan)
	if err != nil {
		utils.LogError(err, "CreatePlan: Failed to persist plan")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create plan.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// GetPlans returns all plans in insertion order.
func (h *PlanHandler) GetPlans(c *gin.Context) {
	plans := h.store.Plans()
	c.JSON(http.StatusOK, gin.H{"data": plans, "total": len(plans)})
}

// GetPlanByID handles fetching a single plan by ID.
func (h *PlanHandler) GetPlanByID(c *gin.Context) {
	id := c.Param("id")
	plan, found := h.store.GetPlanByID(id)
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Plan not found.", ""))
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpdatePlan handles a partial plan update.
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	id := c.Param("id")
	var patch models.PlanPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	found, err := h.store.UpdatePlan(id, patch)
	if err != nil {
		utils.LogError(err, "UpdatePlan: Failed to persist plan "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update plan.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Plan not found to update.", ""))
		return
	}
	plan, _ := h.store.GetPlanByID(id)
	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles deleting a plan. Members still referencing the plan are
// left with a dangling planId by design; their computed status becomes
// "No Plan" until they are moved to another plan.
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	id := c.Param("id")
	found, err := h.store.DeletePlan(id)
	if err != nil {
		utils.LogError(err, "DeletePlan: Failed to persist plan list")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete plan.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Plan not found to delete.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
}
