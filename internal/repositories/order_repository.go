package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "payrecon/internal/models/db_models"
)

// OrderTx is the view of the order aggregate inside one database transaction.
// LockOrderByNumber takes a row lock, so all work against the same order is
// serialized for the lifetime of the transaction.
type OrderTx interface {
	LockOrderByNumber(orderNumber string) (*dbm.Order, error)
	SaveOrder(order *dbm.Order) error
	AppendHistory(entry *dbm.OrderStatusHistory) error
	FindPaymentByTransactionID(transactionID string) (*dbm.Payment, error)
	CreatePayment(payment *dbm.Payment) error
	SavePayment(payment *dbm.Payment) error
}

type OrderRepository interface {
	InTx(ctx context.Context, fn func(tx OrderTx) error) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) InTx(ctx context.Context, fn func(tx OrderTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderTx{tx: tx})
	})
}

type orderTx struct {
	tx *gorm.DB
}

func (t *orderTx) LockOrderByNumber(orderNumber string) (*dbm.Order, error) {
	var order dbm.Order
	err := t.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("order_number = ?", orderNumber).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (t *orderTx) SaveOrder(order *dbm.Order) error {
	return t.tx.Save(order).Error
}

func (t *orderTx) AppendHistory(entry *dbm.OrderStatusHistory) error {
	return t.tx.Create(entry).Error
}

func (t *orderTx) FindPaymentByTransactionID(transactionID string) (*dbm.Payment, error) {
	var payment dbm.Payment
	err := t.tx.
		Where("transaction_id = ?", transactionID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (t *orderTx) CreatePayment(payment *dbm.Payment) error {
	return t.tx.Create(payment).Error
}

func (t *orderTx) SavePayment(payment *dbm.Payment) error {
	return t.tx.Save(payment).Error
}
