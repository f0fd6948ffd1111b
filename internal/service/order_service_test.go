package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/parthbuilds/shubhaKuteer2/internal/models"
	"github.com/parthbuilds/shubhaKuteer2/internal/store"
)

type stubGateway struct {
	amountPaise int64
	currency    string
	err         error
}

func (g *stubGateway) CreateOrder(_ context.Context, amountPaise int64, currency, receipt string) (map[string]interface{}, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.amountPaise = amountPaise
	g.currency = currency
	return map[string]interface{}{"id": "order_stub123", "amount": amountPaise}, nil
}

func newTestService(t *testing.T, gw *stubGateway) (*OrderService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	s := store.NewStoreWithDB(sqlx.NewDb(db, "mysql"))
	return NewOrderService(s, gw, "rzp_test_key", zap.NewNop()), mock
}

func TestCheckoutRecomputesAmount(t *testing.T) {
	gw := &stubGateway{}
	svc, mock := newTestService(t, gw)

	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(11, 1))

	// Claimed amount is 1; the line items say 4498. The line items win.
	res, err := svc.Checkout(context.Background(), &CheckoutInput{
		FirstName: "Asha",
		Email:     "asha@example.com",
		Amount:    1,
		Products: []models.OrderProduct{
			{ID: 1, Name: "Saree", Price: 1999.5, Quantity: 2},
			{ID: 2, Name: "Kurta", Price: 499, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), res.OrderID)
	assert.Equal(t, 4498.0, res.Amount)
	assert.Equal(t, int64(449800), gw.amountPaise)
	assert.Equal(t, "INR", gw.currency)
	assert.Equal(t, "rzp_test_key", res.KeyID)
	assert.Equal(t, "order_stub123", res.RazorpayOrder["id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _ := newTestService(t, &stubGateway{})

	_, err := svc.Checkout(context.Background(), &CheckoutInput{Email: "x@y.z"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutGatewayFailure(t *testing.T) {
	svc, mock := newTestService(t, &stubGateway{err: errors.New("auth failure")})

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		Products: []models.OrderProduct{{Price: 100, Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrGateway)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCapturePaymentStoresSubmittedStatus(t *testing.T) {
	svc, mock := newTestService(t, &stubGateway{})

	// Whatever the callback claims is what gets persisted, no rewriting.
	mock.ExpectExec("UPDATE orders").
		WithArgs("pay_123", "authorized", "order_abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.CapturePayment(context.Background(), "order_abc", "pay_123", "authorized")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCapturePaymentEmptyStatusNotRewritten(t *testing.T) {
	svc, mock := newTestService(t, &stubGateway{})

	// A callback that carries no status must not mark the order completed.
	mock.ExpectExec("UPDATE orders").
		WithArgs("pay_123", "", "order_abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.CapturePayment(context.Background(), "order_abc", "pay_123", "")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDeliveryStatusUpdated(t *testing.T) {
	svc, mock := newTestService(t, &stubGateway{})

	mock.ExpectExec("UPDATE orders SET").
		WithArgs(models.DeliveryShipped, int64(5), models.DeliveryShipped).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := svc.SetDeliveryStatus(context.Background(), 5, models.DeliveryShipped, false)
	require.NoError(t, err)
	assert.Equal(t, DeliveryUpdated, res)
}

func TestSetDeliveryStatusNotFound(t *testing.T) {
	svc, mock := newTestService(t, &stubGateway{})

	mock.ExpectExec("UPDATE orders SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id FROM orders").
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	res, err := svc.SetDeliveryStatus(context.Background(), 999, models.DeliveryShipped, false)
	require.NoError(t, err)
	assert.Equal(t, DeliveryNotFound, res)
}

func TestSetDeliveryStatusUnchanged(t *testing.T) {
	svc, mock := newTestService(t, &stubGateway{})

	mock.ExpectExec("UPDATE orders SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id FROM orders").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	res, err := svc.SetDeliveryStatus(context.Background(), 5, models.DeliveryShipped, false)
	require.NoError(t, err)
	assert.Equal(t, DeliveryUnchanged, res)
}

func TestCancelOrderRefusedWhenDelivered(t *testing.T) {
	svc, mock := newTestService(t, &stubGateway{})

	mock.ExpectExec("UPDATE orders").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id FROM orders").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	res, err := svc.CancelOrder(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, DeliveryRefused, res)
}

func TestToViewRecomputesDisplayAmount(t *testing.T) {
	svc, _ := newTestService(t, &stubGateway{})

	view := svc.toView(&models.Order{
		ID:       3,
		Amount:   999999,
		Products: []byte(`[{"id":1,"price":250,"quantity":4}]`),
	})
	assert.Equal(t, "1000.00", view.Amount)

	// Unreadable products fall back to the stored total.
	view = svc.toView(&models.Order{ID: 4, Amount: 750, Products: []byte(`garbage`)})
	assert.Equal(t, "750.00", view.Amount)
}
