package gateway

// Notification is the gateway's asynchronous payment notification payload.
// Field names follow the wire format; amounts stay strings until after
// signature verification since the signature covers the raw representation.
type Notification struct {
	OrderID           string `json:"order_id" binding:"required"`
	StatusCode        string `json:"status_code" binding:"required"`
	GrossAmount       string `json:"gross_amount" binding:"required"`
	SignatureKey      string `json:"signature_key" binding:"required"`
	TransactionStatus string `json:"transaction_status" binding:"required"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	TransactionID     string `json:"transaction_id" binding:"required"`
	TransactionTime   string `json:"transaction_time"`
	ReferenceNumber   string `json:"reference_number"`
	Currency          string `json:"currency"`
	MerchantID        string `json:"merchant_id"`
}
