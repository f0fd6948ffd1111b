package store

import (
	"context"
	"fmt"

	"github.com/parthbuilds/shubhaKuteer2/internal/models"
)

// CouponInput carries validated coupon fields; Code is uppercased by the
// handler before it gets here.
type CouponInput struct {
	Code              string
	Description       *string
	DiscountType      string
	DiscountValue     float64
	MinOrderValue     *float64
	MaxDiscountAmount *float64
	UsageLimit        *int
	UserLimit         int
	StartDate         *string
	EndDate           *string
	Active            int
}

// ListCoupons returns all coupons, newest first.
func (s *Store) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	coupons := []models.Coupon{}
	err := s.db.SelectContext(ctx, &coupons,
		"SELECT * FROM coupons ORDER BY created_at DESC")
	return coupons, err
}

// CreateCoupon inserts a coupon and returns its id.
func (s *Store) CreateCoupon(ctx context.Context, c *CouponInput) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO coupons (code, description, discount_type, discount_value,
			min_order_value, max_discount_amount, usage_limit, user_limit,
			start_date, end_date, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Code, c.Description, c.DiscountType, c.DiscountValue,
		c.MinOrderValue, c.MaxDiscountAmount, c.UsageLimit, c.UserLimit,
		c.StartDate, c.EndDate, c.Active)
	if err != nil {
		return 0, fmt.Errorf("failed to insert coupon: %w", err)
	}
	return res.LastInsertId()
}

// UpdateCoupon rewrites a coupon row, returning affected rows.
func (s *Store) UpdateCoupon(ctx context.Context, id int64, c *CouponInput) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE coupons SET code=?, description=?, discount_type=?, discount_value=?,
			min_order_value=?, max_discount_amount=?, usage_limit=?, user_limit=?,
			start_date=?, end_date=?, active=?
		WHERE id=?`,
		c.Code, c.Description, c.DiscountType, c.DiscountValue,
		c.MinOrderValue, c.MaxDiscountAmount, c.UsageLimit, c.UserLimit,
		c.StartDate, c.EndDate, c.Active, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteCoupon removes a coupon, returning affected rows.
func (s *Store) DeleteCoupon(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM coupons WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
