package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	dbm "payrecon/internal/models/db_models"
	"payrecon/internal/models/response_models"
	"payrecon/internal/repositories"
	"payrecon/pkg/utils"
)

type ReconciliationService interface {
	ListPending(ctx context.Context, userID uuid.UUID) ([]response_models.PendingReconciliationResponse, error)
	Resolve(ctx context.Context, userID uuid.UUID, reconciliationID uuid.UUID, receivedAmount int64, notes string) (dbm.ReconciliationStatus, error)
}

type reconciliationService struct {
	recons repositories.ReconciliationRepository
}

func NewReconciliationService(recons repositories.ReconciliationRepository) ReconciliationService {
	return &reconciliationService{recons: recons}
}

func (s *reconciliationService) ListPending(ctx context.Context, userID uuid.UUID) ([]response_models.PendingReconciliationResponse, error) {
	recs, err := s.recons.ListPendingByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.PendingReconciliationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, response_models.PendingReconciliationResponse{
			ID:             rec.ID,
			PaymentID:      rec.PaymentID,
			TransactionID:  rec.Payment.TransactionID,
			OrderNumber:    rec.Payment.Order.OrderNumber,
			ExpectedAmount: rec.ExpectedAmountMinor,
			PaymentMethod:  rec.Payment.PaymentMethod,
			CreatedAt:      rec.CreatedAt,
		})
	}
	return out, nil
}

// Resolve applies an operator-reported received amount to a pending
// reconciliation. Exact minor-unit equality decides matched vs mismatch; no
// rounding tolerance. A matched resolution promotes the linked payment (and
// its order's payment status) to PAID in the same transaction.
func (s *reconciliationService) Resolve(ctx context.Context, userID uuid.UUID, reconciliationID uuid.UUID, receivedAmount int64, notes string) (dbm.ReconciliationStatus, error) {
	var resolved dbm.ReconciliationStatus

	err := s.recons.InTx(ctx, func(tx repositories.ReconciliationTx) error {
		rec, err := tx.LockReconciliationByID(reconciliationID)
		if err != nil {
			return err
		}
		if rec == nil {
			return utils.ErrReconNotFound
		}

		payment, err := tx.LockPaymentByID(rec.PaymentID)
		if err != nil {
			return err
		}
		if payment == nil {
			return fmt.Errorf("reconciliation %s references missing payment %s", rec.ID, rec.PaymentID)
		}

		if payment.UserID != userID {
			return utils.ErrForbidden
		}

		if rec.Status != dbm.ReconStatusPending {
			return utils.ErrAlreadyResolved
		}

		resolved = dbm.ReconStatusMismatch
		if receivedAmount == rec.ExpectedAmountMinor {
			resolved = dbm.ReconStatusMatched
		}

		now := time.Now().Unix()
		rec.ReceivedAmountMinor = &receivedAmount
		rec.Status = resolved
		rec.ReconciledAt = &now
		rec.ReconciledBy = &userID
		rec.Notes = notes
		if err := tx.SaveReconciliation(rec); err != nil {
			return err
		}

		if resolved != dbm.ReconStatusMatched {
			return nil
		}

		payment.Status = dbm.PaymentStatusPaid
		if payment.PaidAt == nil {
			payment.PaidAt = &now
		}
		if err := tx.SavePayment(payment); err != nil {
			return err
		}

		order, err := tx.LockOrderByID(payment.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("payment %s references missing order %s", payment.ID, payment.OrderID)
		}

		// Only the payment status moves here; the order lifecycle status
		// stays with the notification path.
		order.PaymentStatus = dbm.PaymentStatusPaid
		if order.PaidAt == nil {
			order.PaidAt = &now
		}
		if err := tx.SaveOrder(order); err != nil {
			return err
		}

		return tx.AppendHistory(&dbm.OrderStatusHistory{
			OrderID:       order.ID,
			Status:        order.Status,
			Notes:         fmt.Sprintf("Payment manually reconciled (%s)", payment.TransactionID),
			CreatedBy:     userID,
			TransactionID: payment.TransactionID,
		})
	})

	if err != nil {
		switch {
		case errors.Is(err, utils.ErrReconNotFound),
			errors.Is(err, utils.ErrForbidden),
			errors.Is(err, utils.ErrAlreadyResolved):
			return "", err
		default:
			return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	}
	return resolved, nil
}
