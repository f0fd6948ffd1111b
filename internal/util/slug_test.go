package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Banarasi Silk Saree", "banarasi-silk-saree"},
		{"  Cotton   Kurta  ", "-cotton-kurta-"},
		{"Men's Shirt (XL)", "mens-shirt-xl"},
		{"Saree #1 @ 50% off!", "saree-1--50-off"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func TestDataItem(t *testing.T) {
	assert.Equal(t, "silksarees", DataItem("Silk Sarees"))
	assert.Equal(t, "kurta", DataItem("  Kurta "))
	assert.Equal(t, "", DataItem(""))
}
