package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "payrecon/internal/models/db_models"
)

// ReconciliationTx is the locked view used while resolving a single
// reconciliation. The reconciliation, its payment and the payment's order are
// all locked through here so the matched-path promotion commits atomically
// with the resolution itself.
type ReconciliationTx interface {
	LockReconciliationByID(id uuid.UUID) (*dbm.PaymentReconciliation, error)
	LockPaymentByID(id uuid.UUID) (*dbm.Payment, error)
	LockOrderByID(id uuid.UUID) (*dbm.Order, error)
	SaveReconciliation(rec *dbm.PaymentReconciliation) error
	SavePayment(payment *dbm.Payment) error
	SaveOrder(order *dbm.Order) error
	AppendHistory(entry *dbm.OrderStatusHistory) error
}

type ReconciliationRepository interface {
	ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]dbm.PaymentReconciliation, error)
	InTx(ctx context.Context, fn func(tx ReconciliationTx) error) error
}

type reconciliationRepository struct {
	db *gorm.DB
}

func NewReconciliationRepository(db *gorm.DB) ReconciliationRepository {
	return &reconciliationRepository{db: db}
}

func (r *reconciliationRepository) ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]dbm.PaymentReconciliation, error) {
	var recs []dbm.PaymentReconciliation
	err := r.db.WithContext(ctx).
		Joins("JOIN payments ON payments.id = payment_reconciliations.payment_id").
		Where("payment_reconciliations.status = ? AND payments.user_id = ?", dbm.ReconStatusPending, userID).
		Preload("Payment").
		Preload("Payment.Order").
		Order("payment_reconciliations.created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *reconciliationRepository) InTx(ctx context.Context, fn func(tx ReconciliationTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&reconciliationTx{tx: tx})
	})
}

type reconciliationTx struct {
	tx *gorm.DB
}

func (t *reconciliationTx) LockReconciliationByID(id uuid.UUID) (*dbm.PaymentReconciliation, error) {
	var rec dbm.PaymentReconciliation
	err := t.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (t *reconciliationTx) LockPaymentByID(id uuid.UUID) (*dbm.Payment, error) {
	var payment dbm.Payment
	err := t.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (t *reconciliationTx) LockOrderByID(id uuid.UUID) (*dbm.Order, error) {
	var order dbm.Order
	err := t.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (t *reconciliationTx) SaveReconciliation(rec *dbm.PaymentReconciliation) error {
	return t.tx.Save(rec).Error
}

func (t *reconciliationTx) SavePayment(payment *dbm.Payment) error {
	return t.tx.Save(payment).Error
}

func (t *reconciliationTx) SaveOrder(order *dbm.Order) error {
	return t.tx.Save(order).Error
}

func (t *reconciliationTx) AppendHistory(entry *dbm.OrderStatusHistory) error {
	return t.tx.Create(entry).Error
}
