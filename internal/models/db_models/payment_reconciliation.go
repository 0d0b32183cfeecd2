package db_models

import "github.com/google/uuid"

type ReconciliationStatus string

const (
	ReconStatusPending  ReconciliationStatus = "pending"
	ReconStatusMatched  ReconciliationStatus = "matched"
	ReconStatusMismatch ReconciliationStatus = "mismatch"
)

// PaymentReconciliation is a pending manual confirmation against an expected
// amount, resolved by the operator who owns the underlying payment.
//
// ReceivedAmountMinor, ReconciledAt and ReconciledBy are all nil together
// (unresolved) or all set together (resolved). Status matched implies
// ReceivedAmountMinor == ExpectedAmountMinor exactly.
type PaymentReconciliation struct {
	BaseModel
	PaymentID uuid.UUID `gorm:"index"`

	ExpectedAmountMinor int64
	ReceivedAmountMinor *int64
	Status              ReconciliationStatus `gorm:"size:16;index"`

	ReconciledAt *int64
	ReconciledBy *uuid.UUID
	Notes        string `gorm:"size:255"`

	Payment Payment `gorm:"foreignKey:PaymentID"`
}
