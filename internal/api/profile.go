package api

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/parthbuilds/shubhaKuteer2/internal/auth"
	"github.com/parthbuilds/shubhaKuteer2/internal/models"
	"github.com/parthbuilds/shubhaKuteer2/internal/router"
	"github.com/parthbuilds/shubhaKuteer2/internal/store"
)

// profileOrder projects an order row for the account dashboard. The stored
// products JSON is decoded into line items; the amount is returned as stored,
// without the display reformatting the admin listing applies.
func profileOrder(o *models.Order) router.H {
	return router.H{
		"id":                  o.ID,
		"first_name":          o.FirstName,
		"last_name":           o.LastName,
		"email":               o.Email,
		"phone_number":        o.PhoneNumber,
		"city":                o.City,
		"apartment":           o.Apartment,
		"postal_code":         o.PostalCode,
		"note":                o.Note,
		"amount":              o.Amount,
		"razorpay_order_id":   o.RazorpayOrderID,
		"razorpay_payment_id": o.RazorpayPayID,
		"status":              o.Status,
		"products":            models.ParseOrderProducts(o.Products),
		"created_at":          o.CreatedAt,
		"updated_at":          o.UpdatedAt,
	}
}

// Profile returns the customer's account data along with their order
// history. Orders are linked by email rather than a user id column.
func (h *Handler) Profile(c router.Ctx) {
	claims, ok := h.userFromBearer(c)
	if !ok {
		return
	}
	ctx := c.Context()

	user, err := h.store.GetUserByID(ctx, claims.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, router.H{"message": "User not found"})
		return
	} else if err != nil {
		h.logger.Error("profile lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"message": "Failed to fetch user data and orders"})
		return
	}

	orders, err := h.store.ListOrdersByEmail(ctx, user.Email)
	if err != nil {
		h.logger.Error("profile orders lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"message": "Failed to fetch user data and orders"})
		return
	}

	views := make([]router.H, 0, len(orders))
	for i := range orders {
		views = append(views, profileOrder(&orders[i]))
	}

	first, last := splitName(user.Name)
	c.JSON(http.StatusOK, router.H{
		"message": "User data and orders fetched successfully",
		"user": router.H{
			"id":           user.ID,
			"first_name":   first,
			"last_name":    last,
			"email":        user.Email,
			"phone_number": "",
			"dob":          "",
		},
		"orders": views,
	})
}

// UpdateProfile changes the customer's display name and email. Phone and dob
// are accepted in the payload but only name and email are persisted.
func (h *Handler) UpdateProfile(c router.Ctx) {
	claims, ok := h.userFromBearer(c)
	if !ok {
		return
	}

	var payload struct {
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		PhoneNumber string `json:"phone_number"`
		Email       string `json:"email"`
		DOB         string `json:"dob"`
	}
	_ = c.BindJSON(&payload)

	fullName := strings.TrimSpace(payload.FirstName + " " + payload.LastName)
	if fullName == "" || payload.Email == "" {
		c.JSON(http.StatusBadRequest, router.H{"message": "Name and email are required"})
		return
	}

	affected, err := h.store.UpdateUserProfile(c.Context(), claims.ID, fullName, payload.Email)
	if err != nil {
		h.logger.Error("profile update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"message": "Failed to update profile"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, router.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, router.H{"message": "Profile updated successfully"})
}

// UpdatePassword rotates the customer's password after verifying the
// current one and checking the replacement against the strength rules.
func (h *Handler) UpdatePassword(c router.Ctx) {
	claims, ok := h.userFromBearer(c)
	if !ok {
		return
	}

	var payload struct {
		CurrentPassword    string `json:"current_password"`
		NewPassword        string `json:"new_password"`
		ConfirmNewPassword string `json:"confirm_new_password"`
	}
	_ = c.BindJSON(&payload)

	if payload.CurrentPassword == "" || payload.NewPassword == "" ||
		payload.NewPassword != payload.ConfirmNewPassword {
		c.JSON(http.StatusBadRequest, router.H{"message": "Passwords are required and must match"})
		return
	}
	if failures := auth.ValidatePasswordStrength(payload.NewPassword); len(failures) > 0 {
		c.JSON(http.StatusBadRequest, router.H{"message": failures[0]})
		return
	}

	ctx := c.Context()
	user, err := h.store.GetUserByID(ctx, claims.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, router.H{"message": "User not found"})
		return
	} else if err != nil {
		h.logger.Error("password change lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"message": "Failed to change password"})
		return
	}

	if !auth.CheckPassword(user.PasswordHash, payload.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, router.H{"message": "Current password is incorrect"})
		return
	}

	hash, err := auth.HashPassword(payload.NewPassword)
	if err != nil {
		h.logger.Error("password hash failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"message": "Failed to change password"})
		return
	}
	if err := h.store.UpdateUserPassword(ctx, claims.ID, hash); err != nil {
		h.logger.Error("password change failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"message": "Failed to change password"})
		return
	}
	c.JSON(http.StatusOK, router.H{"message": "Password changed successfully"})
}

// UserFallthrough answers anything else under /api/user.
func (h *Handler) UserFallthrough(c router.Ctx) {
	c.JSON(http.StatusNotFound, router.H{"message": "User endpoint not found"})
}
