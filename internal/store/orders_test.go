package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parthbuilds/shubhaKuteer2/internal/models"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStoreWithDB(sqlx.NewDb(db, "mysql")), mock
}

func TestCreateOrderReturnsInsertID(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := s.CreateOrder(context.Background(), &OrderInput{
		FirstName:       "Asha",
		Email:           "asha@example.com",
		Amount:          4498,
		RazorpayOrderID: "order_abc",
		Status:          models.PaymentStatusPending,
		Products:        []byte(`[{"id":1,"price":2249,"quantity":2}]`),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDeliveryStatusStampsCancellation(t *testing.T) {
	s, mock := newMockStore(t)

	// Cancellation stamps canceled_at and forces the payment status over.
	mock.ExpectExec(regexp.QuoteMeta("canceled_at = NOW(), status = 'cancelled'")).
		WithArgs(models.DeliveryCancelled, int64(7), models.DeliveryCancelled).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := s.UpdateDeliveryStatus(context.Background(), 7, models.DeliveryCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDeliveryStatusFirstTransitionFromNull(t *testing.T) {
	s, mock := newMockStore(t)

	// Orders are inserted without a delivery status. The predicate must
	// treat NULL as not-in-the-requested-status or such rows can never
	// leave it.
	mock.ExpectExec(regexp.QuoteMeta("WHERE id = ? AND (delivery_status IS NULL OR delivery_status != ?)")).
		WithArgs(models.DeliveryProcessing, int64(3), models.DeliveryProcessing).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := s.UpdateDeliveryStatus(context.Background(), 3, models.DeliveryProcessing)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDeliveryStatusIdempotent(t *testing.T) {
	s, mock := newMockStore(t)

	// The WHERE clause excludes rows already in the requested status, so a
	// repeat call affects nothing and no timestamp is re-stamped.
	mock.ExpectExec("UPDATE orders SET").
		WithArgs(models.DeliveryShipped, int64(7), models.DeliveryShipped).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := s.UpdateDeliveryStatus(context.Background(), 7, models.DeliveryShipped)
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelOrderRefusesDelivered(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("status != 'delivered' AND delivery_status != 'delivered'")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := s.CancelOrder(context.Background(), 9)
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrderByIDNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetOrderByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrderStats(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"total_orders", "total_income", "completed_orders", "unique_customers"}).
		AddRow(10, 12500.50, 7, 4)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	stats, err := s.GetOrderStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalOrders)
	assert.Equal(t, 12500.50, stats.TotalIncome)
	assert.Equal(t, int64(7), stats.CompletedOrders)
	assert.Equal(t, int64(4), stats.UniqueCustomers)
}

func TestNextProductIDOnEmptyTable(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"max_id"}).AddRow(nil)
	mock.ExpectQuery("SELECT MAX").WillReturnRows(rows)

	id, err := s.NextProductID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
