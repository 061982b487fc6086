package update_flags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/catalogtest"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

func seed(h *catalogtest.Harness) {
	h.Entries.Seed(&domain.Entry{
		ID:    "e-1",
		Title: "Monitor",
		Variants: []domain.Variant{
			{
				ID:   "v-1",
				Name: "Standard",
				Detail: &domain.VariantDetail{
					Schemes: domain.SchemeFlags{SaleProduct: true},
				},
			},
			{ID: "v-2", Name: "Pro"},
		},
		Version: 1,
	})
}

func TestExecute(t *testing.T) {
	t.Run("merges partial flags onto the existing record", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		flags, err := NewInteractor(h.Entries, h.Applier).Execute(context.Background(), &Request{
			VariantID: "v-1",
			Flags:     map[string]bool{domain.SchemeRecommended: true},
		})

		require.NoError(t, err)
		assert.True(t, flags.SaleProduct)
		assert.True(t, flags.RecommendedProduct)
		assert.False(t, flags.TradingProduct)
	})

	t.Run("works on a variant with no detail block yet", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		flags, err := NewInteractor(h.Entries, h.Applier).Execute(context.Background(), &Request{
			VariantID: "v-2",
			Flags:     map[string]bool{domain.SchemeValuable: true},
		})

		require.NoError(t, err)
		assert.True(t, flags.ValuableProduct)

		stored := h.Entries.Stored("e-1")
		require.NotNil(t, stored.Variants[1].Detail)
		assert.True(t, stored.Variants[1].Detail.Schemes.ValuableProduct)
	})

	t.Run("unknown flag names are ignored, known ones still merge", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		flags, err := NewInteractor(h.Entries, h.Applier).Execute(context.Background(), &Request{
			VariantID: "v-1",
			Flags: map[string]bool{
				domain.SchemeSale: true,
				"premiumProduct":  true,
			},
		})

		require.NoError(t, err)
		assert.True(t, flags.SaleProduct)
		assert.False(t, flags.TradingProduct)
	})

	t.Run("empty flag record is rejected", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		_, err := NewInteractor(h.Entries, h.Applier).Execute(context.Background(), &Request{
			VariantID: "v-1",
		})

		assert.ErrorIs(t, err, domain.ErrEmptyPatch)
	})

	t.Run("clearing a flag persists false", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		flags, err := NewInteractor(h.Entries, h.Applier).Execute(context.Background(), &Request{
			VariantID: "v-1",
			Flags:     map[string]bool{domain.SchemeSale: false},
		})

		require.NoError(t, err)
		assert.False(t, flags.SaleProduct)
		assert.False(t, flags.Any())
	})
}
