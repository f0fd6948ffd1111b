package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/parthbuilds/shubhaKuteer2/internal/jsonx"
	"github.com/parthbuilds/shubhaKuteer2/internal/models"
	"github.com/parthbuilds/shubhaKuteer2/internal/router"
	"github.com/parthbuilds/shubhaKuteer2/internal/service"
)

// CreateOrderCheckout registers the order with the payment gateway and
// persists it pending.
func (h *Handler) CreateOrderCheckout(c router.Ctx) {
	var payload service.CheckoutInput
	if err := c.BindJSON(&payload); err != nil ||
		payload.Amount == 0 || payload.FirstName == "" || payload.Email == "" || len(payload.Products) == 0 {
		c.JSON(http.StatusBadRequest, router.H{
			"success": false,
			"error":   "Missing required fields: amount, first_name, email, or products array is empty",
		})
		return
	}

	result, err := h.orders.Checkout(c.Context(), &payload)
	if err != nil {
		h.logger.Error("checkout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{
			"success": false,
			"error":   "Payment gateway or database save error",
		})
		return
	}

	c.JSON(http.StatusOK, router.H{
		"success":        true,
		"key":            result.KeyID,
		"razorpay_order": result.RazorpayOrder,
		"order_id":       result.OrderID,
	})
}

// CaptureOrder records the payment callback. The payload is trusted as the
// gateway redirect always has been; status is stored verbatim.
func (h *Handler) CaptureOrder(c router.Ctx) {
	var payload struct {
		RazorpayOrderID   string    `json:"razorpay_order_id"`
		RazorpayPaymentID string    `json:"razorpay_payment_id"`
		PaymentStatus     string    `json:"payment_status"`
		OrderID           jsonx.Int `json:"order_id"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, router.H{"success": false, "error": "Invalid request body"})
		return
	}

	if err := h.orders.CapturePayment(c.Context(), payload.RazorpayOrderID, payload.RazorpayPaymentID, payload.PaymentStatus); err != nil {
		h.logger.Error("payment capture failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"success": false, "error": "Failed to capture payment"})
		return
	}
	c.JSON(http.StatusOK, router.H{
		"success":  true,
		"message":  "Payment captured successfully",
		"order_id": int(payload.OrderID),
	})
}

// ListOrders returns every order for the admin table.
func (h *Handler) ListOrders(c router.Ctx) {
	orders, err := h.orders.ListOrders(c.Context())
	if err != nil {
		h.logger.Error("list orders failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{
			"success": false,
			"error":   "Failed to fetch orders from the database.",
		})
		return
	}
	c.JSON(http.StatusOK, router.H{"success": true, "orders": orders})
}

// OrderStats serves the admin dashboard rollup.
func (h *Handler) OrderStats(c router.Ctx) {
	stats, err := h.orders.Stats(c.Context())
	if err != nil {
		h.logger.Error("order stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"success": false, "error": "Failed to fetch order stats"})
		return
	}
	c.JSON(http.StatusOK, router.H{
		"success": true,
		"data": router.H{
			"totalSales":    stats.CompletedOrders,
			"totalIncome":   fmt.Sprintf("%.2f", stats.TotalIncome),
			"ordersPaid":    stats.CompletedOrders,
			"totalVisitors": stats.UniqueCustomers,
		},
	})
}

// GetOrder returns one order. Non-numeric ids are a 400; this is also
// where GET /api/orders/test lands, since this prefix is declared first.
func (h *Handler) GetOrder(c router.Ctx) {
	id, ok := idFromPath(c.Path(), "/api/orders/")
	if !ok {
		c.JSON(http.StatusBadRequest, router.H{"success": false, "error": "Invalid order ID provided."})
		return
	}

	order, err := h.orders.GetOrder(c.Context(), id)
	if errors.Is(err, service.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, router.H{"success": false, "error": "Order not found"})
		return
	}
	if err != nil {
		h.logger.Error("get order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"success": false, "error": "Failed to fetch order"})
		return
	}
	c.JSON(http.StatusOK, router.H{"success": true, "order": order})
}

// DeleteOrder hard-deletes an order.
func (h *Handler) DeleteOrder(c router.Ctx) {
	id, _ := idFromPath(c.Path(), "/api/orders/")
	err := h.orders.DeleteOrder(c.Context(), id)
	if errors.Is(err, service.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, router.H{"success": false, "error": "Order not found"})
		return
	}
	if err != nil {
		h.logger.Error("delete order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"success": false, "error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, router.H{"success": true, "message": "Order deleted successfully"})
}

// UpdateDeliveryStatus transitions an order's delivery lifecycle.
func (h *Handler) UpdateDeliveryStatus(c router.Ctx) {
	if !strings.HasSuffix(c.Path(), "/delivery-status") {
		h.OrdersFallthrough(c)
		return
	}
	id, ok := idFromPath(c.Path(), "/api/orders/")
	if !ok {
		c.JSON(http.StatusBadRequest, router.H{"success": false, "error": "Invalid order ID provided."})
		return
	}

	var payload struct {
		DeliveryStatus string `json:"delivery_status"`
	}
	if err := c.BindJSON(&payload); err != nil || strings.TrimSpace(payload.DeliveryStatus) == "" {
		c.JSON(http.StatusBadRequest, router.H{"success": false, "error": "A valid delivery_status is required."})
		return
	}

	status := strings.ToLower(strings.TrimSpace(payload.DeliveryStatus))
	if !models.IsValidDeliveryStatus(status) {
		c.JSON(http.StatusBadRequest, router.H{
			"success": false,
			"error": fmt.Sprintf("Invalid delivery status: %s. Must be one of: %s.",
				payload.DeliveryStatus, strings.Join(models.ValidDeliveryStatuses, ", ")),
		})
		return
	}

	result, err := h.orders.SetDeliveryStatus(c.Context(), id, status, false)
	if err != nil {
		h.logger.Error("delivery status update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"success": false, "error": "Failed to update delivery status."})
		return
	}

	switch result {
	case service.DeliveryNotFound:
		c.JSON(http.StatusNotFound, router.H{"success": false, "message": "Order not found."})
	case service.DeliveryUnchanged:
		c.JSON(http.StatusOK, router.H{
			"success":    true,
			"message":    fmt.Sprintf("Order %d delivery status is already %q.", id, status),
			"new_status": status,
		})
	default:
		c.JSON(http.StatusOK, router.H{
			"success":    true,
			"message":    fmt.Sprintf("Order %d delivery status updated to %q.", id, status),
			"new_status": status,
		})
	}
}

// CancelOrder is the legacy cancellation endpoint. It shares the delivery
// transition with PUT /:id/delivery-status but refuses delivered orders.
func (h *Handler) CancelOrder(c router.Ctx) {
	var payload struct {
		OrderID jsonx.Int `json:"order_id"`
	}
	if err := c.BindJSON(&payload); err != nil || payload.OrderID == 0 {
		c.JSON(http.StatusBadRequest, router.H{"success": false, "error": "Missing required field: order_id"})
		return
	}

	result, err := h.orders.CancelOrder(c.Context(), int64(payload.OrderID))
	if err != nil {
		h.logger.Error("cancel order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"success": false, "error": "Failed to cancel order"})
		return
	}
	if result != service.DeliveryUpdated {
		c.JSON(http.StatusNotFound, router.H{
			"success": false,
			"error":   "Order not found or cannot be cancelled (e.g., already delivered).",
		})
		return
	}
	c.JSON(http.StatusOK, router.H{"success": true, "message": "Order cancelled successfully"})
}

// OrdersTest answers the orders diagnostics probe. The GET :id prefix is
// declared above this route, so requests actually land there; kept for
// parity with the declared table.
func (h *Handler) OrdersTest(c router.Ctx) {
	hasKey := h.orders.GatewayKeyID() != ""
	c.JSON(http.StatusOK, router.H{
		"success":        true,
		"message":        "Orders API is working",
		"hasRazorpayKey": hasKey,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) OrdersFallthrough(c router.Ctx) {
	c.JSON(http.StatusNotFound, router.H{"message": "Order endpoint not found"})
}
