package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"twenty percent off", 100, 20, 80},
		{"zero discount keeps price", 99, 0, 99},
		{"full discount", 150, 100, 0},
		{"zero price", 0, 50, 0},
		{"rounds to nearest integer", 99.99, 10, 90},
		{"rounds half away from zero", 101, 50, 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FinalPrice(tt.price, tt.discount))
		})
	}
}

func TestPriceBlock_Recompute(t *testing.T) {
	t.Run("derives final price and defaults currency", func(t *testing.T) {
		p := PriceBlock{Price: 200, Discount: 25}
		p.Recompute()

		assert.Equal(t, DefaultCurrency, p.Currency)
		assert.Equal(t, float64(150), p.FinalPrice)
	})

	t.Run("uppercases the currency code", func(t *testing.T) {
		p := PriceBlock{Currency: "usd", Price: 10}
		p.Recompute()

		assert.Equal(t, "USD", p.Currency)
	})

	t.Run("overwrites a client-supplied final price", func(t *testing.T) {
		p := PriceBlock{Price: 100, Discount: 10, FinalPrice: 1}
		p.Recompute()

		assert.Equal(t, float64(90), p.FinalPrice)
	})
}

func TestPriceBlock_Validate(t *testing.T) {
	t.Run("accepts a sane block", func(t *testing.T) {
		p := PriceBlock{Price: 49.5, Discount: 5}

		require.NoError(t, p.Validate())
	})

	t.Run("rejects negative price", func(t *testing.T) {
		p := PriceBlock{Price: -1}

		assert.ErrorIs(t, p.Validate(), ErrInvalidPrice)
	})

	t.Run("rejects discount outside 0..100", func(t *testing.T) {
		assert.ErrorIs(t, (&PriceBlock{Price: 1, Discount: -1}).Validate(), ErrInvalidDiscount)
		assert.ErrorIs(t, (&PriceBlock{Price: 1, Discount: 101}).Validate(), ErrInvalidDiscount)
	})
}
