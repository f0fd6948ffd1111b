package models

import (
	"bytes"
	"encoding/json"

	"github.com/parthbuilds/shubhaKuteer2/internal/jsonx"
)

// OrderProduct is one checkout line item. Field types are forgiving because
// the storefront serializes cart entries from DOM state.
type OrderProduct struct {
	ID       jsonx.Int   `json:"id"`
	Name     string      `json:"name"`
	Price    jsonx.Float `json:"price"`
	Quantity jsonx.Int   `json:"quantity"`
	Image    string      `json:"image,omitempty"`
	Size     string      `json:"size,omitempty"`
	Color    string      `json:"color,omitempty"`
}

// ParseOrderProducts decodes the stored products column. Depending on how a
// row was written the value may be a JSON array or a JSON string wrapping
// one; malformed content degrades to an empty slice, never an error.
func ParseOrderProducts(raw []byte) []OrderProduct {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []OrderProduct{}
	}
	var items []OrderProduct
	if err := json.Unmarshal(raw, &items); err == nil && items != nil {
		return items
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		items = nil
		if err := json.Unmarshal([]byte(s), &items); err == nil && items != nil {
			return items
		}
	}
	return []OrderProduct{}
}

// OrderProductsTotal is the authoritative order amount: sum of price times
// quantity over the line items.
func OrderProductsTotal(items []OrderProduct) float64 {
	var total float64
	for _, p := range items {
		total += float64(p.Price) * float64(p.Quantity)
	}
	return total
}
