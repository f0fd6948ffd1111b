package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// User is a storefront customer account.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Admin is a back-office account. Permissions is an opaque JSON blob the
// admin UI interprets.
type Admin struct {
	ID           int64          `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Email        string         `db:"email" json:"email"`
	PasswordHash string         `db:"password_hash" json:"-"`
	Phone        *string        `db:"phone" json:"phone"`
	Role         string         `db:"role" json:"role"`
	Permissions  types.JSONText `db:"permissions" json:"permissions"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// Product. Boolean flags are stored and served as 0/1 TINYINTs; gallery,
// sizes and variations are JSON text columns.
type Product struct {
	ID          int64          `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Slug        string         `db:"slug" json:"slug"`
	Price       float64        `db:"price" json:"price"`
	OriginPrice *float64       `db:"origin_price" json:"origin_price"`
	Quantity    int            `db:"quantity" json:"quantity"`
	Sold        int            `db:"sold" json:"sold"`
	Rate        float64        `db:"rate" json:"rate"`
	IsNew       int            `db:"is_new" json:"is_new"`
	OnSale      int            `db:"on_sale" json:"on_sale"`
	Category    string         `db:"category" json:"category"`
	Description *string        `db:"description" json:"description"`
	Type        *string        `db:"type" json:"type"`
	Brand       *string        `db:"brand" json:"brand"`
	MainImage   *string        `db:"main_image" json:"main_image"`
	ThumbImage  *string        `db:"thumb_image" json:"thumb_image"`
	Gallery     types.JSONText `db:"gallery" json:"gallery"`
	Sizes       types.JSONText `db:"sizes" json:"sizes,omitempty"`
	Variations  types.JSONText `db:"variations" json:"variations,omitempty"`
	Action      string         `db:"action" json:"action"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

type Category struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	DataItem  string    `db:"data_item" json:"data_item"`
	Sale      int       `db:"sale" json:"sale"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Attribute row joined with its category name for listing.
type Attribute struct {
	ID              int64          `db:"id" json:"id"`
	CategoryID      int64          `db:"category_id" json:"category_id,omitempty"`
	AttributeName   string         `db:"attribute_name" json:"attribute_name"`
	AttributeValues types.JSONText `db:"attribute_values" json:"attribute_values"`
	CategoryName    *string        `db:"category_name" json:"category_name,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

// AttributeValue is one entry of an attribute's value list; Code carries an
// optional hex swatch for color attributes.
type AttributeValue struct {
	Value string `json:"value"`
	Code  string `json:"code,omitempty"`
}

type Banner struct {
	ID             int64      `db:"id" json:"id"`
	Title          string     `db:"title" json:"title"`
	Description    *string    `db:"description" json:"description"`
	BannerType     string     `db:"banner_type" json:"banner_type"`
	ImageURL       string     `db:"image_url" json:"image_url"`
	MobileImageURL *string    `db:"mobile_image_url" json:"mobile_image_url"`
	LinkURL        *string    `db:"link_url" json:"link_url"`
	LinkTarget     string     `db:"link_target" json:"link_target"`
	Position       int        `db:"position" json:"position"`
	PageLocation   *string    `db:"page_location" json:"page_location"`
	StartDate      *time.Time `db:"start_date" json:"start_date"`
	EndDate        *time.Time `db:"end_date" json:"end_date"`
	Active         int        `db:"active" json:"active"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

type Coupon struct {
	ID                int64      `db:"id" json:"id"`
	Code              string     `db:"code" json:"code"`
	Description       *string    `db:"description" json:"description"`
	DiscountType      string     `db:"discount_type" json:"discount_type"`
	DiscountValue     float64    `db:"discount_value" json:"discount_value"`
	MinOrderValue     *float64   `db:"min_order_value" json:"min_order_value"`
	MaxDiscountAmount *float64   `db:"max_discount_amount" json:"max_discount_amount"`
	UsageLimit        *int       `db:"usage_limit" json:"usage_limit"`
	UserLimit         int        `db:"user_limit" json:"user_limit"`
	StartDate         *time.Time `db:"start_date" json:"start_date"`
	EndDate           *time.Time `db:"end_date" json:"end_date"`
	Active            int        `db:"active" json:"active"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}

// Order carries two independent lifecycles: payment status and delivery
// status. Products is the denormalized line-item JSON captured at checkout.
type Order struct {
	ID               int64          `db:"id" json:"id"`
	FirstName        string         `db:"first_name" json:"first_name"`
	LastName         *string        `db:"last_name" json:"last_name"`
	Email            string         `db:"email" json:"email"`
	PhoneNumber      *string        `db:"phone_number" json:"phone_number"`
	City             *string        `db:"city" json:"city"`
	Apartment        *string        `db:"apartment" json:"apartment"`
	PostalCode       *string        `db:"postal_code" json:"postal_code"`
	Note             *string        `db:"note" json:"note"`
	Amount           float64        `db:"amount" json:"amount"`
	RazorpayOrderID  *string        `db:"razorpay_order_id" json:"razorpay_order_id"`
	RazorpayPayID    *string        `db:"razorpay_payment_id" json:"razorpay_payment_id"`
	Status           string         `db:"status" json:"status"`
	DeliveryStatus   *string        `db:"delivery_status" json:"delivery_status"`
	Products         types.JSONText `db:"products" json:"products"`
	OutForDeliveryAt *time.Time     `db:"out_for_delivery_at" json:"out_for_delivery_at"`
	DeliveredAt      *time.Time     `db:"delivered_at" json:"delivered_at"`
	CanceledAt       *time.Time     `db:"canceled_at" json:"canceled_at"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time     `db:"updated_at" json:"updated_at"`
}

// Payment statuses
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusCancelled = "cancelled"
)

// Delivery statuses; ValidDeliveryStatuses is the full enumerated set a
// transition is validated against.
const (
	DeliveryPending        = "pending"
	DeliveryProcessing     = "processing"
	DeliveryShipped        = "shipped"
	DeliveryOutForDelivery = "out for delivery"
	DeliveryDelivered      = "delivered"
	DeliveryReturned       = "returned"
	DeliveryCancelled      = "cancelled"
)

var ValidDeliveryStatuses = []string{
	DeliveryPending,
	DeliveryProcessing,
	DeliveryShipped,
	DeliveryOutForDelivery,
	DeliveryDelivered,
	DeliveryReturned,
	DeliveryCancelled,
}

// IsValidDeliveryStatus checks membership in the enumerated set.
func IsValidDeliveryStatus(s string) bool {
	for _, v := range ValidDeliveryStatuses {
		if v == s {
			return true
		}
	}
	return false
}
