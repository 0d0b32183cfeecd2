package request_models

import "github.com/google/uuid"

type ResolveReconciliationRequest struct {
	ReconciliationID uuid.UUID `json:"reconciliation_id" binding:"required"`
	ReceivedAmount   int64     `json:"received_amount" binding:"required"`
	Notes            string    `json:"notes" binding:"max=255"`
}
