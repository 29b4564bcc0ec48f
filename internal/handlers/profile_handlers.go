package handlers

import (
	"net/http"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/store"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GymProfileHandler serves the singleton gym profile.
type GymProfileHandler struct {
	store *store.GymStore
}

// NewGymProfileHandler creates a new GymProfileHandler.
func NewGymProfileHandler(s *store.GymStore) *GymProfileHandler {
	return &GymProfileHandler{store: s}
}

// GetGymProfile returns the current profile.
func (h *GymProfileHandler) GetGymProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GymProfile())
}

// UpdateGymProfile merges a partial profile update. Nested bank details and
// business hours merge instead of replacing, so a single-field update never
// wipes its siblings.
func (h *GymProfileHandler) UpdateGymProfile(c *gin.Context) {
	var patch models.GymProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	if patch.Email != nil && !utils.IsEmpty(*patch.Email) && !utils.IsValidEmail(*patch.Email) {
		utils.RespondValidationFailed(c, "Invalid email format")
		return
	}

	profile, err := h.store.UpdateGymProfile(patch)
	if err != nil {
		utils.LogError(err, "UpdateGymProfile: Failed to persist profile")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update gym profile.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, profile)
}
