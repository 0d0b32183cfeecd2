package db_models

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Order is a buyer's purchase record, tracked independently of settlement.
// OrderNumber is the external-facing reference the gateway echoes back as
// order_id; it never changes after creation.
//
// PaidAt (unix seconds) is non-nil iff PaymentStatus is PAID, set exactly once
// on the transition into PAID.
type Order struct {
	BaseModel
	OrderNumber   string        `gorm:"uniqueIndex;size:64"`
	Status        OrderStatus   `gorm:"size:16;index"`
	PaymentStatus PaymentStatus `gorm:"size:16;index"`
	PaymentMethod string        `gorm:"size:32"`
	PaidAt        *int64
	BuyerID       uuid.UUID `gorm:"index"`
}

// Rank orders payment statuses by how terminal they are; used by the
// notification path so an older PENDING notification cannot clobber a
// settled or failed result.
func (s PaymentStatus) Rank() int {
	switch s {
	case PaymentStatusPaid, PaymentStatusFailed:
		return 1
	default:
		return 0
	}
}
