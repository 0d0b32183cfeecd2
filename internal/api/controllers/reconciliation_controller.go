package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"payrecon/internal/models/request_models"
	"payrecon/internal/services"
	"payrecon/pkg/utils"
)

type ReconciliationController struct {
	reconciliationService services.ReconciliationService
}

func NewReconciliationController(reconciliationService services.ReconciliationService) *ReconciliationController {
	return &ReconciliationController{
		reconciliationService: reconciliationService,
	}
}

// ListPending godoc
// @Summary List pending reconciliations
// @Description Returns pending manual reconciliations for the caller's transactions
// @Tags Reconciliations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reconciliations/pending [get]
func (r *ReconciliationController) ListPending(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	pending, err := r.reconciliationService.ListPending(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pending, "Pending reconciliations fetched")
}

// Resolve godoc
// @Summary Resolve a pending reconciliation
// @Description Matches an operator-reported received amount against the expected amount
// @Tags Reconciliations
// @Accept json
// @Produce json
// @Param request body request_models.ResolveReconciliationRequest true "Resolve request"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reconciliations/resolve [post]
func (r *ReconciliationController) Resolve(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	var request request_models.ResolveReconciliationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	status, err := r.reconciliationService.Resolve(
		c.Request.Context(), userID, request.ReconciliationID, request.ReceivedAmount, request.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": string(status)})
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("user_id")
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
