package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConverter_Charge(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		markup   float64
		cost     float64
		expected int64
	}{
		{
			name:     "golden value from product quote",
			rate:     30,
			markup:   20,
			cost:     10,
			expected: 360,
		},
		{
			name:     "golden value from sms quote",
			rate:     30,
			markup:   20,
			cost:     2.5,
			expected: 90,
		},
		{
			name:     "fractional result rounds up",
			rate:     30,
			markup:   20,
			cost:     0.01,
			expected: 1,
		},
		{
			name:     "zero cost",
			rate:     30,
			markup:   20,
			cost:     0,
			expected: 0,
		},
		{
			name:     "no markup",
			rate:     15,
			markup:   0,
			cost:     2,
			expected: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.rate, tt.markup)
			assert.Equal(t, tt.expected, c.Charge(tt.cost))
		})
	}
}

func TestConverter_ChargeIsDeterministic(t *testing.T) {
	c := New(30, 20)
	first := c.Charge(2.5)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, c.Charge(2.5))
	}
}

func TestConverter_ChargePerThousand(t *testing.T) {
	tests := []struct {
		name     string
		markup   float64
		rate     float64
		quantity int
		expected int64
	}{
		{
			name:     "exact thousand",
			markup:   20,
			rate:     100,
			quantity: 1000,
			expected: 120,
		},
		{
			name:     "partial thousand rounds up",
			markup:   20,
			rate:     100,
			quantity: 150,
			expected: 18,
		},
		{
			name:     "single unit never free",
			markup:   0,
			rate:     1,
			quantity: 1,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(30, tt.markup)
			assert.Equal(t, tt.expected, c.ChargePerThousand(tt.rate, tt.quantity))
		})
	}
}
