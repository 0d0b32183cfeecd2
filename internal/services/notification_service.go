package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"payrecon/internal/gateway"
	dbm "payrecon/internal/models/db_models"
	"payrecon/internal/repositories"
	"payrecon/pkg/utils"
)

type NotificationService interface {
	// Process applies one inbound gateway notification to the order aggregate.
	// A nil return means the notification was acknowledged, including the
	// no-op case where the same notification was already applied.
	Process(ctx context.Context, n gateway.Notification) error
}

type notificationService struct {
	orders    repositories.OrderRepository
	serverKey string
}

func NewNotificationService(orders repositories.OrderRepository, serverKey string) NotificationService {
	return &notificationService{
		orders:    orders,
		serverKey: serverKey,
	}
}

func (s *notificationService) Process(ctx context.Context, n gateway.Notification) error {
	// Reject forged notifications before touching the database. The signature
	// covers the raw gross_amount string, so verification happens before any
	// parsing of it.
	if !gateway.VerifySignature(n.OrderID, n.StatusCode, n.GrossAmount, s.serverKey, n.SignatureKey) {
		return utils.ErrInvalidSignature
	}

	txnStatus := gateway.ParseTransactionStatus(n.TransactionStatus)
	fraudStatus := gateway.ParseFraudStatus(n.FraudStatus)
	orderStatus, paymentStatus := gateway.MapStatus(txnStatus, fraudStatus)

	amount, err := gateway.ParseGrossAmount(n.GrossAmount)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidAmount, err)
	}

	err = s.orders.InTx(ctx, func(tx repositories.OrderTx) error {
		order, err := tx.LockOrderByNumber(n.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return utils.ErrUnknownOrder
		}

		payment, err := tx.FindPaymentByTransactionID(n.TransactionID)
		if err != nil {
			return err
		}

		// Redelivery of an already-applied notification: same transaction,
		// same resulting status. Commit nothing so history stays single-entry.
		if payment != nil && payment.Status == paymentStatus {
			log.Printf("notification: duplicate delivery for transaction %s (order %s), no-op", n.TransactionID, n.OrderID)
			return nil
		}

		// Terminal wins: a stale PENDING notification must not clobber an
		// order already settled or failed. Between terminal states the
		// gateway never un-settles, so last-applied wins.
		if paymentStatus.Rank() < order.PaymentStatus.Rank() {
			log.Printf("notification: stale %s for order %s already %s, no-op", paymentStatus, n.OrderID, order.PaymentStatus)
			return nil
		}

		now := time.Now().Unix()

		order.Status = orderStatus
		order.PaymentStatus = paymentStatus
		order.PaymentMethod = n.PaymentType
		if paymentStatus == dbm.PaymentStatusPaid {
			if order.PaidAt == nil {
				order.PaidAt = &now
			}
		} else {
			order.PaidAt = nil
		}
		if err := tx.SaveOrder(order); err != nil {
			return err
		}

		if err := tx.AppendHistory(&dbm.OrderStatusHistory{
			OrderID:       order.ID,
			Status:        orderStatus,
			Notes:         fmt.Sprintf("Payment %s via %s", n.TransactionStatus, n.PaymentType),
			CreatedBy:     order.BuyerID,
			TransactionID: n.TransactionID,
		}); err != nil {
			return err
		}

		if payment == nil {
			raw, _ := json.Marshal(n)
			return tx.CreatePayment(&dbm.Payment{
				OrderID:         order.ID,
				UserID:          order.BuyerID,
				AmountMinor:     amount,
				PaymentMethod:   n.PaymentType,
				Status:          paymentStatus,
				TransactionID:   n.TransactionID,
				ReferenceNumber: n.ReferenceNumber,
				PaidAt:          order.PaidAt,
				PaymentData:     raw,
			})
		}

		payment.Status = paymentStatus
		payment.ReferenceNumber = n.ReferenceNumber
		payment.PaidAt = order.PaidAt
		return tx.SavePayment(payment)
	})

	if err != nil {
		if errors.Is(err, utils.ErrUnknownOrder) {
			return err
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
