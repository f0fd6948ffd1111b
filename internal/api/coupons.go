package api

import (
	"net/http"
	"strings"

	"github.com/parthbuilds/shubhaKuteer2/internal/jsonx"
	"github.com/parthbuilds/shubhaKuteer2/internal/router"
	"github.com/parthbuilds/shubhaKuteer2/internal/store"
)

type couponPayload struct {
	Code              string       `json:"code"`
	Description       *string      `json:"description"`
	DiscountType      string       `json:"discount_type"`
	DiscountValue     jsonx.Float  `json:"discount_value"`
	MinOrderValue     *jsonx.Float `json:"min_order_value"`
	MaxDiscountAmount *jsonx.Float `json:"max_discount_amount"`
	UsageLimit        *jsonx.Int   `json:"usage_limit"`
	UserLimit         jsonx.Int    `json:"user_limit"`
	StartDate         *string      `json:"start_date"`
	EndDate           *string      `json:"end_date"`
	Active            *jsonx.Flag  `json:"active"`
}

// toInput normalizes a coupon: the code is stored uppercase, user_limit
// defaults to 1 and active defaults on.
func (p *couponPayload) toInput() *store.CouponInput {
	userLimit := int(p.UserLimit)
	if userLimit == 0 {
		userLimit = 1
	}
	active := 1
	if p.Active != nil {
		active = int(*p.Active)
	}

	var minOrder, maxDiscount *float64
	if p.MinOrderValue != nil {
		v := float64(*p.MinOrderValue)
		minOrder = &v
	}
	if p.MaxDiscountAmount != nil {
		v := float64(*p.MaxDiscountAmount)
		maxDiscount = &v
	}
	var usageLimit *int
	if p.UsageLimit != nil {
		v := int(*p.UsageLimit)
		usageLimit = &v
	}

	return &store.CouponInput{
		Code:              strings.ToUpper(p.Code),
		Description:       p.Description,
		DiscountType:      p.DiscountType,
		DiscountValue:     float64(p.DiscountValue),
		MinOrderValue:     minOrder,
		MaxDiscountAmount: maxDiscount,
		UsageLimit:        usageLimit,
		UserLimit:         userLimit,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		Active:            active,
	}
}

// ListCoupons returns all coupons.
func (h *Handler) ListCoupons(c router.Ctx) {
	coupons, err := h.store.ListCoupons(c.Context())
	if err != nil {
		h.serverError(c, "list coupons", err)
		return
	}
	c.JSON(http.StatusOK, router.H{"success": true, "coupons": coupons})
}

// CreateCoupon inserts a coupon.
func (h *Handler) CreateCoupon(c router.Ctx) {
	var payload couponPayload
	if err := c.BindJSON(&payload); err != nil ||
		payload.Code == "" || payload.DiscountType == "" {
		c.JSON(http.StatusBadRequest, router.H{
			"success": false,
			"message": "Code and discount type are required",
		})
		return
	}

	id, err := h.store.CreateCoupon(c.Context(), payload.toInput())
	if err != nil {
		h.serverError(c, "create coupon", err)
		return
	}
	c.JSON(http.StatusCreated, router.H{
		"success": true,
		"message": "Coupon created successfully",
		"id":      id,
	})
}

// UpdateCoupon rewrites a coupon row.
func (h *Handler) UpdateCoupon(c router.Ctx) {
	id, _ := idFromPath(c.Path(), "/api/admin/coupons/")

	var payload couponPayload
	if err := c.BindJSON(&payload); err != nil ||
		payload.Code == "" || payload.DiscountType == "" {
		c.JSON(http.StatusBadRequest, router.H{
			"success": false,
			"message": "Code and discount type are required",
		})
		return
	}

	affected, err := h.store.UpdateCoupon(c.Context(), id, payload.toInput())
	if err != nil {
		h.serverError(c, "update coupon", err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, router.H{"success": false, "message": "Coupon not found"})
		return
	}
	c.JSON(http.StatusOK, router.H{"success": true, "message": "Coupon updated successfully"})
}

// DeleteCoupon removes a coupon.
func (h *Handler) DeleteCoupon(c router.Ctx) {
	id, _ := idFromPath(c.Path(), "/api/admin/coupons/")
	affected, err := h.store.DeleteCoupon(c.Context(), id)
	if err != nil {
		h.serverError(c, "delete coupon", err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, router.H{"success": false, "message": "Coupon not found"})
		return
	}
	c.JSON(http.StatusOK, router.H{"success": true, "message": "Coupon deleted successfully"})
}

func (h *Handler) CouponsFallthrough(c router.Ctx) {
	c.JSON(http.StatusNotFound, router.H{"message": "Coupon endpoint not found"})
}
