package domain

import (
	"math"
	"strings"
)

// DefaultCurrency is applied when a price block arrives without one.
const DefaultCurrency = "INR"

// PriceBlock is the price record carried by a catalog entry and by each
// color's price slot. FinalPrice is derived, never client-supplied: it is
// recomputed server-side whenever price or discount changes.
type PriceBlock struct {
	Currency   string  `json:"currency"`
	Price      float64 `json:"price"`
	Discount   float64 `json:"discount"`
	FinalPrice float64 `json:"finalPrice"`
}

// FinalPrice derives the final price from a base price and a percentage
// discount: round(price - price*discount/100).
func FinalPrice(price, discountPercent float64) float64 {
	return math.Round(price - price*discountPercent/100)
}

// Recompute normalizes the currency and re-derives FinalPrice. Every write
// path that touches price or discount must call this before persisting.
func (p *PriceBlock) Recompute() {
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	p.Currency = strings.ToUpper(p.Currency)
	p.FinalPrice = FinalPrice(p.Price, p.Discount)
}

// Validate checks the price block invariants.
func (p *PriceBlock) Validate() error {
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	if p.Discount < 0 || p.Discount > 100 {
		return ErrInvalidDiscount
	}
	return nil
}
