package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway creates payment orders with an external provider. Amounts are in
// the provider's smallest currency unit.
type Gateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (map[string]interface{}, error)
}

// RazorpayGateway is the production Gateway backed by the Razorpay Orders API.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder registers an order with Razorpay. The SDK is not
// context-aware; ctx is accepted for interface symmetry.
func (g *RazorpayGateway) CreateOrder(_ context.Context, amountPaise int64, currency, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create failed: %w", err)
	}
	return order, nil
}

// ToPaise converts a rupee amount to paise, rounding to the nearest unit.
func ToPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// NewReceipt builds the receipt tag sent with each gateway order.
func NewReceipt() string {
	return fmt.Sprintf("order_%d", time.Now().UnixMilli())
}
