package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"payrecon/internal/gateway"
	"payrecon/internal/services"
	"payrecon/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationService
}

func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// HandleNotification godoc
// @Summary Gateway payment notification webhook
// @Description Receives asynchronous payment status notifications from the gateway
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body gateway.Notification true "Gateway notification payload"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /payments/notification [post]
func (n *NotificationController) HandleNotification(c *gin.Context) {
	var payload gateway.Notification
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid notification payload"})
		return
	}

	err := n.notificationService.Process(c.Request.Context(), payload)
	switch {
	case err == nil:
		// Includes the idempotent redelivery case; the gateway only needs
		// the 2xx ack.
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, utils.ErrInvalidSignature):
		log.Printf("webhook: rejected forged notification for order %s", payload.OrderID)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid signature"})
	case errors.Is(err, utils.ErrUnknownOrder):
		// Non-retryable: the order will never appear, so don't provoke
		// gateway redelivery with a 5xx.
		log.Printf("webhook: notification for unknown order %s", payload.OrderID)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "unknown order"})
	case errors.Is(err, utils.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid gross amount"})
	default:
		// Transient persistence failure; the gateway retries on non-2xx and
		// idempotency makes the retry converge.
		log.Printf("webhook: processing failed for order %s: %v", payload.OrderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to process notification"})
	}
}
