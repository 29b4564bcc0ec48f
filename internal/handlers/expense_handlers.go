package handlers

import (
	"net/http"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/store"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler holds the domain store.
type ExpenseHandler struct {
	store *store.GymStore
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(s *store.GymStore) *ExpenseHandler {
	return &ExpenseHandler{store: s}
}

// CreateExpense records an operating expense.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	if expense.Amount < 0 {
		utils.RespondValidationFailed(c, "Amount must not be negative")
		return
	}

	stored, err := h.store.AddExpense(expense)
	if err != nil {
		utils.LogError(err, "CreateExpense: Failed to persist expense")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create expense.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// GetExpenses returns all expenses in insertion order.
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	expenses := h.store.Expenses()
	c.JSON(http.StatusOK, gin.H{"data": expenses, "total": len(expenses)})
}

// GetExpenseByID handles fetching a single expense by ID.
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	id := c.Param("id")
	expense, found := h.store.GetExpenseByID(id)
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Expense not found.", ""))
		return
	}
	c.JSON(http.StatusOK, expense)
}

// UpdateExpense handles a partial expense update.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id := c.Param("id")
	var patch models.ExpensePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	if patch.Amount != nil && *patch.Amount < 0 {
		utils.RespondValidationFailed(c, "Amount must not be negative")
		return
	}

	found, err := h.store.UpdateExpense(id, patch)
	if err != nil {
		utils.LogError(err, "UpdateExpense: Failed to persist expense "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update expense.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Expense not found to update.", ""))
		return
	}
	expense, _ := h.store.GetExpenseByID(id)
	c.JSON(http.StatusOK, expense)
}

// DeleteExpense handles deleting an expense.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id := c.Param("id")
	found, err := h.store.DeleteExpense(id)
	if err != nil {
		utils.LogError(err, "DeleteExpense: Failed to persist expense list")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete expense.", "Internal error"))
		return
	}
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Expense not found to delete.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
