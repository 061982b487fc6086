package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemeFlags_Or(t *testing.T) {
	t.Run("a flag survives if either source sets it", func(t *testing.T) {
		a := SchemeFlags{SaleProduct: true, ValuableProduct: true}
		b := SchemeFlags{TradingProduct: true, ValuableProduct: true}

		got := a.Or(b)

		assert.Equal(t, SchemeFlags{
			SaleProduct:     true,
			TradingProduct:  true,
			ValuableProduct: true,
		}, got)
	})

	t.Run("is commutative", func(t *testing.T) {
		a := SchemeFlags{CompanyProduct: true}
		b := SchemeFlags{RecommendedProduct: true}

		assert.Equal(t, a.Or(b), b.Or(a))
	})

	t.Run("zero value is the identity", func(t *testing.T) {
		a := SchemeFlags{SaleProduct: true, RecommendedProduct: true}

		assert.Equal(t, a, a.Or(SchemeFlags{}))
	})
}

func TestSchemeFlags_Merge(t *testing.T) {
	t.Run("only named flags change", func(t *testing.T) {
		base := SchemeFlags{SaleProduct: true, CompanyProduct: true}

		got := base.Merge(map[string]bool{
			SchemeSale:    false,
			SchemeTrading: true,
		})

		assert.Equal(t, SchemeFlags{TradingProduct: true, CompanyProduct: true}, got)
	})

	t.Run("unknown names are ignored", func(t *testing.T) {
		base := SchemeFlags{ValuableProduct: true}

		got := base.Merge(map[string]bool{"premiumProduct": true})

		assert.Equal(t, base, got)
	})
}

func TestNormalizeFlags(t *testing.T) {
	t.Run("missing names default to false", func(t *testing.T) {
		got := NormalizeFlags(map[string]bool{SchemeRecommended: true})

		for _, name := range SchemeNames {
			assert.Equal(t, name == SchemeRecommended, got.Get(name), name)
		}
	})

	t.Run("nil input yields the zero record", func(t *testing.T) {
		assert.Equal(t, SchemeFlags{}, NormalizeFlags(nil))
		assert.False(t, NormalizeFlags(nil).Any())
	})
}

func TestIsSchemeName(t *testing.T) {
	for _, name := range SchemeNames {
		assert.True(t, IsSchemeName(name), name)
	}
	assert.False(t, IsSchemeName("saleproduct"))
	assert.False(t, IsSchemeName(""))
}
