package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
}

// registerRecurringRoutes registers routes for recurring transaction templates.
func registerRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := &recurringHandler{recurringService: recurringService}

	recurring := rg.Group("/recurring")
	{
		recurring.GET("", h.listRecurring)
		recurring.POST("", h.createRecurring)
		recurring.PUT("/:id/amount", h.updateAmount)
		recurring.POST("/:id/pause", h.pauseRecurring)
		recurring.POST("/:id/resume", h.resumeRecurring)
		recurring.DELETE("/:id", h.deleteRecurring)
	}
}

// createRecurring godoc
// @Summary Create a recurring transaction
// @Description Creates a template that generates an income or expense on every occurrence.
// @Tags recurring
// @Accept json
// @Produce json
// @Param recurring body dto.CreateRecurringRequest true "Template details"
// @Success 201 {object} domain.RecurringTransaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Account or category not found"
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring [post]
func (h *recurringHandler) createRecurring(c *gin.Context) {
	var req dto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rt, err := h.recurringService.CreateRecurring(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create recurring transaction")
		return
	}
	c.JSON(http.StatusCreated, rt)
}

// listRecurring godoc
// @Summary List recurring transactions
// @Tags recurring
// @Produce json
// @Success 200 {array} domain.RecurringTransaction
// @Security BearerAuth
// @Router /recurring [get]
func (h *recurringHandler) listRecurring(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.recurringService.ListRecurring(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list recurring transactions")
		return
	}
	c.JSON(http.StatusOK, items)
}

// updateAmount godoc
// @Summary Change the amount of a recurring transaction
// @Description Only future occurrences use the new amount.
// @Tags recurring
// @Accept json
// @Produce json
// @Param id path string true "Recurring transaction ID"
// @Param amount body dto.UpdateRecurringAmountRequest true "New amount"
// @Success 200 {object} domain.RecurringTransaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/{id}/amount [put]
func (h *recurringHandler) updateAmount(c *gin.Context) {
	var req dto.UpdateRecurringAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rt, err := h.recurringService.UpdateRecurringAmount(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update recurring transaction")
		return
	}
	c.JSON(http.StatusOK, rt)
}

// pauseRecurring godoc
// @Summary Pause a recurring transaction
// @Tags recurring
// @Produce json
// @Param id path string true "Recurring transaction ID"
// @Success 200 {object} domain.RecurringTransaction
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/{id}/pause [post]
func (h *recurringHandler) pauseRecurring(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rt, err := h.recurringService.PauseRecurring(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to pause recurring transaction")
		return
	}
	c.JSON(http.StatusOK, rt)
}

// resumeRecurring godoc
// @Summary Resume a recurring transaction
// @Tags recurring
// @Produce json
// @Param id path string true "Recurring transaction ID"
// @Success 200 {object} domain.RecurringTransaction
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/{id}/resume [post]
func (h *recurringHandler) resumeRecurring(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rt, err := h.recurringService.ResumeRecurring(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to resume recurring transaction")
		return
	}
	c.JSON(http.StatusOK, rt)
}

// deleteRecurring godoc
// @Summary Delete a recurring transaction
// @Description Already generated transactions are kept.
// @Tags recurring
// @Param id path string true "Recurring transaction ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/{id} [delete]
func (h *recurringHandler) deleteRecurring(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.recurringService.DeleteRecurring(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete recurring transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
