package services

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrecon/internal/gateway"
	dbm "payrecon/internal/models/db_models"
	"payrecon/internal/repositories"
	"payrecon/pkg/utils"
)

const testServerKey = "test-server-key"

// fakeOrderStore is an in-memory OrderRepository. InTx has no rollback; tests
// that inject failures only assert on the returned error.
type fakeOrderStore struct {
	orders   map[string]*dbm.Order   // keyed by order number
	payments map[string]*dbm.Payment // keyed by transaction id
	history  []dbm.OrderStatusHistory

	txCount int
	saveErr error
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders:   map[string]*dbm.Order{},
		payments: map[string]*dbm.Payment{},
	}
}

func (f *fakeOrderStore) InTx(ctx context.Context, fn func(tx repositories.OrderTx) error) error {
	f.txCount++
	return fn(f)
}

func (f *fakeOrderStore) LockOrderByNumber(orderNumber string) (*dbm.Order, error) {
	order, ok := f.orders[orderNumber]
	if !ok {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (f *fakeOrderStore) SaveOrder(order *dbm.Order) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *order
	f.orders[order.OrderNumber] = &cp
	return nil
}

func (f *fakeOrderStore) AppendHistory(entry *dbm.OrderStatusHistory) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.history = append(f.history, *entry)
	return nil
}

func (f *fakeOrderStore) FindPaymentByTransactionID(transactionID string) (*dbm.Payment, error) {
	payment, ok := f.payments[transactionID]
	if !ok {
		return nil, nil
	}
	cp := *payment
	return &cp, nil
}

func (f *fakeOrderStore) CreatePayment(payment *dbm.Payment) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	cp := *payment
	f.payments[payment.TransactionID] = &cp
	return nil
}

func (f *fakeOrderStore) SavePayment(payment *dbm.Payment) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *payment
	f.payments[payment.TransactionID] = &cp
	return nil
}

func (f *fakeOrderStore) addOrder(orderNumber string, buyerID uuid.UUID) *dbm.Order {
	order := &dbm.Order{
		OrderNumber:   orderNumber,
		Status:        dbm.OrderStatusPending,
		PaymentStatus: dbm.PaymentStatusPending,
		BuyerID:       buyerID,
	}
	order.ID = uuid.New()
	f.orders[orderNumber] = order
	return order
}

func signedNotification(orderID, txnStatus, fraudStatus, grossAmount, transactionID string) gateway.Notification {
	statusCode := "200"
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + testServerKey))
	return gateway.Notification{
		OrderID:           orderID,
		StatusCode:        statusCode,
		GrossAmount:       grossAmount,
		SignatureKey:      hex.EncodeToString(sum[:]),
		TransactionStatus: txnStatus,
		FraudStatus:       fraudStatus,
		PaymentType:       "credit_card",
		TransactionID:     transactionID,
		TransactionTime:   "2026-09-01 10:00:00",
	}
}

func TestProcessCaptureAccept(t *testing.T) {
	store := newFakeOrderStore()
	buyer := uuid.New()
	store.addOrder("ORD-1", buyer)
	svc := NewNotificationService(store, testServerKey)

	err := svc.Process(context.Background(), signedNotification("ORD-1", "capture", "accept", "150000", "TXN-1"))
	require.NoError(t, err)

	order := store.orders["ORD-1"]
	assert.Equal(t, dbm.OrderStatusConfirmed, order.Status)
	assert.Equal(t, dbm.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, "credit_card", order.PaymentMethod)
	require.NotNil(t, order.PaidAt)

	require.Len(t, store.history, 1)
	assert.Equal(t, "Payment capture via credit_card", store.history[0].Notes)
	assert.Equal(t, buyer, store.history[0].CreatedBy)

	payment := store.payments["TXN-1"]
	require.NotNil(t, payment)
	assert.Equal(t, int64(150000), payment.AmountMinor)
	assert.Equal(t, dbm.PaymentStatusPaid, payment.Status)
	assert.Equal(t, buyer, payment.UserID)
	assert.NotEmpty(t, payment.PaymentData)
}

func TestProcessForgedSignature(t *testing.T) {
	store := newFakeOrderStore()
	store.addOrder("ORD-1", uuid.New())
	svc := NewNotificationService(store, testServerKey)

	n := signedNotification("ORD-1", "capture", "accept", "150000", "TXN-1")
	n.SignatureKey = "deadbeef"

	err := svc.Process(context.Background(), n)
	require.ErrorIs(t, err, utils.ErrInvalidSignature)

	// Fast rejection path: nothing was read or written.
	assert.Zero(t, store.txCount)
	assert.Empty(t, store.history)
	assert.Empty(t, store.payments)
	assert.Equal(t, dbm.PaymentStatusPending, store.orders["ORD-1"].PaymentStatus)
}

func TestProcessUnknownOrder(t *testing.T) {
	store := newFakeOrderStore()
	svc := NewNotificationService(store, testServerKey)

	err := svc.Process(context.Background(), signedNotification("ORD-404", "settlement", "", "150000", "TXN-1"))
	require.ErrorIs(t, err, utils.ErrUnknownOrder)
	assert.Empty(t, store.history)
	assert.Empty(t, store.payments)
}

func TestProcessIdempotentRedelivery(t *testing.T) {
	store := newFakeOrderStore()
	store.addOrder("ORD-1", uuid.New())
	svc := NewNotificationService(store, testServerKey)

	n := signedNotification("ORD-1", "settlement", "", "150000", "TXN-1")
	require.NoError(t, svc.Process(context.Background(), n))

	first := *store.orders["ORD-1"]
	firstPaidAt := *first.PaidAt

	require.NoError(t, svc.Process(context.Background(), n))

	assert.Len(t, store.history, 1, "redelivery must not append a second history entry")
	assert.Len(t, store.payments, 1)
	assert.Equal(t, first, *store.orders["ORD-1"])
	assert.Equal(t, firstPaidAt, *store.orders["ORD-1"].PaidAt)
}

func TestProcessTerminalWinsOverPending(t *testing.T) {
	tests := []struct {
		name  string
		first string
		then  string
	}{
		{"pending then settlement", "pending", "settlement"},
		{"settlement then pending", "settlement", "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeOrderStore()
			store.addOrder("ORD-1", uuid.New())
			svc := NewNotificationService(store, testServerKey)

			require.NoError(t, svc.Process(context.Background(), signedNotification("ORD-1", tt.first, "", "150000", "TXN-1")))
			require.NoError(t, svc.Process(context.Background(), signedNotification("ORD-1", tt.then, "", "150000", "TXN-1")))

			order := store.orders["ORD-1"]
			assert.Equal(t, dbm.OrderStatusConfirmed, order.Status)
			assert.Equal(t, dbm.PaymentStatusPaid, order.PaymentStatus)
			require.NotNil(t, order.PaidAt)
			assert.Equal(t, dbm.PaymentStatusPaid, store.payments["TXN-1"].Status)
		})
	}
}

func TestProcessFailedPaymentClearsPaidAt(t *testing.T) {
	store := newFakeOrderStore()
	store.addOrder("ORD-1", uuid.New())
	svc := NewNotificationService(store, testServerKey)

	require.NoError(t, svc.Process(context.Background(), signedNotification("ORD-1", "settlement", "", "150000", "TXN-1")))
	require.NoError(t, svc.Process(context.Background(), signedNotification("ORD-1", "deny", "", "150000", "TXN-1")))

	order := store.orders["ORD-1"]
	assert.Equal(t, dbm.OrderStatusCancelled, order.Status)
	assert.Equal(t, dbm.PaymentStatusFailed, order.PaymentStatus)
	assert.Nil(t, order.PaidAt, "paid_at is non-nil iff the payment status is PAID")
}

func TestProcessUnrecognizedStatus(t *testing.T) {
	store := newFakeOrderStore()
	store.addOrder("ORD-1", uuid.New())
	svc := NewNotificationService(store, testServerKey)

	err := svc.Process(context.Background(), signedNotification("ORD-1", "refund_pending", "", "150000", "TXN-1"))
	require.NoError(t, err)

	order := store.orders["ORD-1"]
	assert.Equal(t, dbm.OrderStatusPending, order.Status)
	assert.Equal(t, dbm.PaymentStatusPending, order.PaymentStatus)
	assert.Nil(t, order.PaidAt)
}

func TestProcessInvalidAmount(t *testing.T) {
	store := newFakeOrderStore()
	store.addOrder("ORD-1", uuid.New())
	svc := NewNotificationService(store, testServerKey)

	err := svc.Process(context.Background(), signedNotification("ORD-1", "settlement", "", "not-a-number", "TXN-1"))
	require.ErrorIs(t, err, utils.ErrInvalidAmount)
	assert.Zero(t, store.txCount)
}

func TestProcessPersistenceFailure(t *testing.T) {
	store := newFakeOrderStore()
	store.addOrder("ORD-1", uuid.New())
	store.saveErr = errors.New("connection reset")
	svc := NewNotificationService(store, testServerKey)

	err := svc.Process(context.Background(), signedNotification("ORD-1", "settlement", "", "150000", "TXN-1"))
	require.ErrorIs(t, err, utils.ErrDatabaseError)
}
