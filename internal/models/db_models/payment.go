package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Payment is one row per attempted settlement, keyed by the gateway-assigned
// TransactionID (the idempotency key across webhook redeliveries). Rows are
// updated in place by later notifications for the same transaction and never
// deleted.
type Payment struct {
	BaseModel
	OrderID uuid.UUID `gorm:"index"`
	UserID  uuid.UUID `gorm:"index"`

	AmountMinor   int64
	PaymentMethod string        `gorm:"size:32"`
	Status        PaymentStatus `gorm:"size:16;index"`

	TransactionID   string `gorm:"uniqueIndex;size:64"`
	ReferenceNumber string `gorm:"size:64"`
	PaidAt          *int64

	// Raw notification payload snapshot, kept for audit only.
	PaymentData datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Order Order `gorm:"foreignKey:OrderID"`
}
