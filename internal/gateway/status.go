package gateway

import dbm "payrecon/internal/models/db_models"

type TransactionStatus string

const (
	TxnStatusCapture      TransactionStatus = "capture"
	TxnStatusSettlement   TransactionStatus = "settlement"
	TxnStatusPending      TransactionStatus = "pending"
	TxnStatusDeny         TransactionStatus = "deny"
	TxnStatusExpire       TransactionStatus = "expire"
	TxnStatusCancel       TransactionStatus = "cancel"
	TxnStatusUnrecognized TransactionStatus = "unrecognized"
)

type FraudStatus string

const (
	FraudAccept       FraudStatus = "accept"
	FraudChallenge    FraudStatus = "challenge"
	FraudDeny         FraudStatus = "deny"
	FraudUnrecognized FraudStatus = "unrecognized"
)

func ParseTransactionStatus(s string) TransactionStatus {
	switch TransactionStatus(s) {
	case TxnStatusCapture, TxnStatusSettlement, TxnStatusPending,
		TxnStatusDeny, TxnStatusExpire, TxnStatusCancel:
		return TransactionStatus(s)
	default:
		return TxnStatusUnrecognized
	}
}

func ParseFraudStatus(s string) FraudStatus {
	switch FraudStatus(s) {
	case FraudAccept, FraudChallenge, FraudDeny:
		return FraudStatus(s)
	default:
		return FraudUnrecognized
	}
}

// MapStatus translates a gateway transaction status (plus fraud flag) into the
// order/payment state pair. Total over both enums: anything unrecognized maps to
// PENDING/PENDING so an unknown gateway status leaves the order in a
// human-correctable stuck state instead of a wrong terminal one.
//
// "capture" alone is not final for card payments; it confirms only once the
// fraud check accepts. "settlement" is unconditional because the gateway only
// emits it after its own fraud pipeline clears.
func MapStatus(ts TransactionStatus, fs FraudStatus) (dbm.OrderStatus, dbm.PaymentStatus) {
	switch ts {
	case TxnStatusCapture:
		if fs == FraudAccept {
			return dbm.OrderStatusConfirmed, dbm.PaymentStatusPaid
		}
		return dbm.OrderStatusPending, dbm.PaymentStatusPending
	case TxnStatusSettlement:
		return dbm.OrderStatusConfirmed, dbm.PaymentStatusPaid
	case TxnStatusDeny, TxnStatusExpire, TxnStatusCancel:
		return dbm.OrderStatusCancelled, dbm.PaymentStatusFailed
	default:
		return dbm.OrderStatusPending, dbm.PaymentStatusPending
	}
}
