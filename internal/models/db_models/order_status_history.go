package db_models

import "github.com/google/uuid"

// OrderStatusHistory is the append-only audit trail of order transitions.
// Entries are immutable once written.
type OrderStatusHistory struct {
	BaseModel
	OrderID       uuid.UUID   `gorm:"index"`
	Status        OrderStatus `gorm:"size:16"`
	Notes         string      `gorm:"size:255"`
	CreatedBy     uuid.UUID
	TransactionID string      `gorm:"size:64;index"`
}
