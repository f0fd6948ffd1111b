package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/parthbuilds/shubhaKuteer2/internal/models"
)

// OrderInput carries the checkout fields persisted alongside the payment
// gateway handle. Products is the serialized line-item JSON.
type OrderInput struct {
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	City            string
	Apartment       string
	PostalCode      string
	Note            string
	Amount          float64
	RazorpayOrderID string
	Status          string
	Products        []byte
}

// CreateOrder inserts an order row and returns its id.
func (s *Store) CreateOrder(ctx context.Context, in *OrderInput) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (first_name, last_name, email, phone_number,
			city, apartment, postal_code, note, amount,
			razorpay_order_id, status, products, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		in.FirstName, in.LastName, in.Email, in.PhoneNumber,
		in.City, in.Apartment, in.PostalCode, in.Note, in.Amount,
		in.RazorpayOrderID, in.Status, in.Products)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return res.LastInsertId()
}

// CapturePayment records the gateway payment id and status against the
// gateway order handle. The status is stored verbatim; the caller is
// trusted, as the capture callback always has been.
func (s *Store) CapturePayment(ctx context.Context, razorpayOrderID, razorpayPaymentID, status string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE orders
		SET razorpay_payment_id = ?, status = ?, updated_at = NOW()
		WHERE razorpay_order_id = ?`,
		razorpayPaymentID, status, razorpayOrderID)
	return err
}

// ListOrders returns all orders, newest first.
func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.SelectContext(ctx, &orders, `
		SELECT id, first_name, last_name, email, phone_number,
			city, apartment, postal_code, note, amount,
			razorpay_order_id, razorpay_payment_id, status,
			delivery_status, out_for_delivery_at, delivered_at, canceled_at,
			products, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC`)
	return orders, err
}

// ListOrdersByEmail returns a customer's orders; orders link to users only
// by email string equality, there is no foreign key.
func (s *Store) ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.SelectContext(ctx, &orders, `
		SELECT id, first_name, last_name, email, phone_number,
			city, apartment, postal_code, note, amount,
			razorpay_order_id, razorpay_payment_id, status,
			delivery_status, out_for_delivery_at, delivered_at, canceled_at,
			products, created_at, updated_at
		FROM orders
		WHERE email = ?
		ORDER BY created_at DESC`, email)
	return orders, err
}

// GetOrderByID retrieves one order; ErrNotFound if absent.
func (s *Store) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, `
		SELECT id, first_name, last_name, email, phone_number,
			city, apartment, postal_code, note, amount,
			razorpay_order_id, razorpay_payment_id, status,
			delivery_status, out_for_delivery_at, delivered_at, canceled_at,
			products, created_at, updated_at
		FROM orders
		WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderExists checks for a row without loading it.
func (s *Store) OrderExists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := s.db.GetContext(ctx, &found, "SELECT id FROM orders WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteOrder hard-deletes an order, returning affected rows.
func (s *Store) DeleteOrder(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateDeliveryStatus transitions the delivery lifecycle and stamps the
// transition timestamp exactly once: out_for_delivery_at, delivered_at, or
// canceled_at (the latter also forcing payment status to cancelled). The
// WHERE clause skips rows already in the requested status so a repeated
// call affects zero rows instead of re-stamping. Rows that have never had
// a delivery status count as not-yet-in-it, so the first transition lands.
func (s *Store) UpdateDeliveryStatus(ctx context.Context, id int64, status string) (int64, error) {
	setClauses := []string{"delivery_status = ?", "updated_at = NOW()"}
	switch status {
	case models.DeliveryOutForDelivery:
		setClauses = append(setClauses, "out_for_delivery_at = NOW()")
	case models.DeliveryDelivered:
		setClauses = append(setClauses, "delivered_at = NOW()")
	case models.DeliveryCancelled:
		setClauses = append(setClauses, "canceled_at = NOW()", "status = 'cancelled'")
	}

	query := fmt.Sprintf(
		"UPDATE orders SET %s WHERE id = ? AND (delivery_status IS NULL OR delivery_status != ?)",
		strings.Join(setClauses, ", "))

	res, err := s.db.ExecContext(ctx, query, status, id, status)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CancelOrder is the legacy cancellation path: it refuses orders already
// delivered on either axis. Zero affected rows means missing or refused;
// the two are indistinguishable here, as in the legacy endpoint.
func (s *Store) CancelOrder(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE orders
		SET status = 'cancelled', delivery_status = 'cancelled', canceled_at = NOW(), updated_at = NOW()
		WHERE id = ? AND status != 'delivered' AND delivery_status != 'delivered'`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// OrderStats is the admin dashboard rollup.
type OrderStats struct {
	TotalOrders     int64   `db:"total_orders"`
	TotalIncome     float64 `db:"total_income"`
	CompletedOrders int64   `db:"completed_orders"`
	UniqueCustomers int64   `db:"unique_customers"`
}

// GetOrderStats aggregates order counts and income across all orders.
func (s *Store) GetOrderStats(ctx context.Context) (*OrderStats, error) {
	var stats OrderStats
	err := s.db.GetContext(ctx, &stats, `
		SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(amount), 0) AS total_income,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_orders,
			COUNT(DISTINCT email) AS unique_customers
		FROM orders`)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
