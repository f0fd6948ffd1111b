package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/parthbuilds/shubhaKuteer2/internal/jsonx"
	"github.com/parthbuilds/shubhaKuteer2/internal/models"
	"github.com/parthbuilds/shubhaKuteer2/internal/payment"
	"github.com/parthbuilds/shubhaKuteer2/internal/store"
	"github.com/parthbuilds/shubhaKuteer2/internal/util"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("order has no products")
	ErrGateway       = errors.New("payment gateway error")
)

// OrderService owns the checkout and fulfilment flows: gateway order
// creation, payment capture, and the delivery lifecycle.
type OrderService struct {
	store   *store.Store
	gateway payment.Gateway
	keyID   string
	logger  *zap.Logger
}

func NewOrderService(s *store.Store, gateway payment.Gateway, keyID string, logger *zap.Logger) *OrderService {
	return &OrderService{store: s, gateway: gateway, keyID: keyID, logger: logger}
}

// CheckoutInput is the client checkout payload. Amount is required in the
// request but never trusted; the persisted total is recomputed from the
// line items.
type CheckoutInput struct {
	FirstName   string                `json:"first_name"`
	LastName    string                `json:"last_name"`
	Email       string                `json:"email"`
	PhoneNumber string                `json:"phone_number"`
	City        string                `json:"city"`
	Apartment   string                `json:"apartment"`
	PostalCode  string                `json:"postal_code"`
	Note        string                `json:"note"`
	Amount      jsonx.Float           `json:"amount"`
	Products    []models.OrderProduct `json:"products"`
}

// CheckoutResult carries what the client needs to open the payment widget.
type CheckoutResult struct {
	OrderID       int64
	RazorpayOrder map[string]interface{}
	KeyID         string
	Amount        float64
}

// Checkout recomputes the order total, registers the order with the
// payment gateway, and persists it with payment status pending.
func (s *OrderService) Checkout(ctx context.Context, in *CheckoutInput) (*CheckoutResult, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Checkout")
	defer span.End()

	if len(in.Products) == 0 {
		return nil, ErrEmptyCart
	}
	amount := models.OrderProductsTotal(in.Products)

	gatewayOrder, err := s.gateway.CreateOrder(ctx, payment.ToPaise(amount), "INR", payment.NewReceipt())
	if err != nil {
		util.PaymentOrdersFailedTotal.Inc()
		s.logger.Error("gateway order creation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	util.PaymentOrdersCreatedTotal.Inc()

	gatewayOrderID, _ := gatewayOrder["id"].(string)

	productsJSON, err := json.Marshal(in.Products)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize products: %w", err)
	}

	orderID, err := s.store.CreateOrder(ctx, &store.OrderInput{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		PhoneNumber:     in.PhoneNumber,
		City:            in.City,
		Apartment:       in.Apartment,
		PostalCode:      in.PostalCode,
		Note:            in.Note,
		Amount:          amount,
		RazorpayOrderID: gatewayOrderID,
		Status:          models.PaymentStatusPending,
		Products:        productsJSON,
	})
	if err != nil {
		return nil, err
	}

	util.OrdersCreatedTotal.Inc()
	s.logger.Info("order created",
		zap.Int64("order_id", orderID),
		zap.String("razorpay_order_id", gatewayOrderID),
		zap.Float64("amount", amount))

	return &CheckoutResult{
		OrderID:       orderID,
		RazorpayOrder: gatewayOrder,
		KeyID:         s.keyID,
		Amount:        amount,
	}, nil
}

// CapturePayment records the gateway callback against the order. The
// submitted payment status is persisted verbatim, empty included; the
// capture endpoint has always trusted the caller on this field.
func (s *OrderService) CapturePayment(ctx context.Context, razorpayOrderID, paymentID, status string) error {
	ctx, span := util.StartSpan(ctx, "OrderService.CapturePayment")
	defer span.End()

	return s.store.CapturePayment(ctx, razorpayOrderID, paymentID, status)
}

// OrderView is an order shaped for API responses: line items parsed out of
// the stored JSON and the amount formatted to two decimals.
type OrderView struct {
	ID               int64                 `json:"id"`
	FirstName        string                `json:"first_name"`
	LastName         *string               `json:"last_name"`
	Email            string                `json:"email"`
	PhoneNumber      *string               `json:"phone_number"`
	City             *string               `json:"city"`
	Apartment        *string               `json:"apartment"`
	PostalCode       *string               `json:"postal_code"`
	Note             *string               `json:"note"`
	Amount           string                `json:"amount"`
	RazorpayOrderID  *string               `json:"razorpay_order_id"`
	RazorpayPayID    *string               `json:"razorpay_payment_id"`
	Status           string                `json:"status"`
	DeliveryStatus   *string               `json:"delivery_status"`
	Products         []models.OrderProduct `json:"products"`
	OutForDeliveryAt *time.Time            `json:"out_for_delivery_at"`
	DeliveredAt      *time.Time            `json:"delivered_at"`
	CanceledAt       *time.Time            `json:"canceled_at"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        *time.Time            `json:"updated_at"`
}

func (s *OrderService) toView(o *models.Order) *OrderView {
	products := models.ParseOrderProducts(o.Products)
	// The displayed amount is recomputed from the line items so stale stored
	// totals never reach the admin UI; the stored amount is the fallback for
	// rows whose products column is unreadable.
	amount := o.Amount
	if len(products) > 0 {
		amount = models.OrderProductsTotal(products)
	}
	return &OrderView{
		ID:               o.ID,
		FirstName:        o.FirstName,
		LastName:         o.LastName,
		Email:            o.Email,
		PhoneNumber:      o.PhoneNumber,
		City:             o.City,
		Apartment:        o.Apartment,
		PostalCode:       o.PostalCode,
		Note:             o.Note,
		Amount:           fmt.Sprintf("%.2f", amount),
		RazorpayOrderID:  o.RazorpayOrderID,
		RazorpayPayID:    o.RazorpayPayID,
		Status:           o.Status,
		DeliveryStatus:   o.DeliveryStatus,
		Products:         products,
		OutForDeliveryAt: o.OutForDeliveryAt,
		DeliveredAt:      o.DeliveredAt,
		CanceledAt:       o.CanceledAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// ListOrders returns all orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]*OrderView, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.ListOrders")
	defer span.End()

	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, s.toView(&orders[i]))
	}
	return views, nil
}

// ListOrdersForEmail returns the orders linked to a customer's email.
func (s *OrderService) ListOrdersForEmail(ctx context.Context, email string) ([]*OrderView, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.ListOrdersForEmail")
	defer span.End()

	orders, err := s.store.ListOrdersByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	views := make([]*OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, s.toView(&orders[i]))
	}
	return views, nil
}

// GetOrder returns one order or ErrOrderNotFound.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*OrderView, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.GetOrder")
	defer span.End()

	order, err := s.store.GetOrderByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.toView(order), nil
}

// DeleteOrder removes an order; ErrOrderNotFound when nothing matched.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "OrderService.DeleteOrder")
	defer span.End()

	affected, err := s.store.DeleteOrder(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// DeliveryResult is the outcome of a delivery lifecycle transition.
type DeliveryResult int

const (
	// DeliveryUpdated means the transition was applied and stamped.
	DeliveryUpdated DeliveryResult = iota
	// DeliveryUnchanged means the order was already in the requested status.
	DeliveryUnchanged
	// DeliveryNotFound means no such order exists.
	DeliveryNotFound
	// DeliveryRefused means the order exists but the transition was
	// rejected, e.g. cancelling a delivered order.
	DeliveryRefused
)

// SetDeliveryStatus is the single transition operation behind both the
// delivery-status endpoint and the cancel endpoints. refuseDelivered makes
// a cancellation bounce off orders already delivered on either lifecycle.
func (s *OrderService) SetDeliveryStatus(ctx context.Context, id int64, status string, refuseDelivered bool) (DeliveryResult, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.SetDeliveryStatus")
	defer span.End()

	var affected int64
	var err error
	if refuseDelivered && status == models.DeliveryCancelled {
		affected, err = s.store.CancelOrder(ctx, id)
	} else {
		affected, err = s.store.UpdateDeliveryStatus(ctx, id, status)
	}
	if err != nil {
		return 0, err
	}

	if affected == 0 {
		exists, err := s.store.OrderExists(ctx, id)
		if err != nil {
			return 0, err
		}
		if !exists {
			return DeliveryNotFound, nil
		}
		if refuseDelivered && status == models.DeliveryCancelled {
			return DeliveryRefused, nil
		}
		return DeliveryUnchanged, nil
	}

	util.DeliveryStatusUpdatesTotal.WithLabelValues(status).Inc()
	if status == models.DeliveryCancelled {
		util.OrdersCancelledTotal.Inc()
	}
	s.logger.Info("delivery status updated",
		zap.Int64("order_id", id),
		zap.String("status", status))
	return DeliveryUpdated, nil
}

// CancelOrder is the customer-facing cancellation: a cancelled transition
// that refuses delivered orders.
func (s *OrderService) CancelOrder(ctx context.Context, id int64) (DeliveryResult, error) {
	return s.SetDeliveryStatus(ctx, id, models.DeliveryCancelled, true)
}

// GatewayKeyID exposes the publishable payment key for client-side checks.
func (s *OrderService) GatewayKeyID() string { return s.keyID }

// Stats returns the admin dashboard rollup.
func (s *OrderService) Stats(ctx context.Context) (*store.OrderStats, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Stats")
	defer span.End()

	return s.store.GetOrderStats(ctx)
}
