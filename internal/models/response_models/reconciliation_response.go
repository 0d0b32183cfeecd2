package response_models

import "github.com/google/uuid"

type PendingReconciliationResponse struct {
	ID             uuid.UUID `json:"id"`
	PaymentID      uuid.UUID `json:"payment_id"`
	TransactionID  string    `json:"transaction_id"`
	OrderNumber    string    `json:"order_number"`
	ExpectedAmount int64     `json:"expected_amount"`
	PaymentMethod  string    `json:"payment_method"`
	CreatedAt      int64     `json:"created_at"`
}

type ResolveReconciliationResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
