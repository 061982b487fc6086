package list_by_scheme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/catalogtest"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

func fixture() *catalogtest.FakeReadModel {
	return &catalogtest.FakeReadModel{Entries: []*domain.Entry{
		{
			ID: "e-1", Title: "Monitor", Category: "monitors",
			Variants: []domain.Variant{
				{ID: "v-1", Name: "Standard", Status: domain.StatusLive, Detail: &domain.VariantDetail{
					Schemes: domain.SchemeFlags{SaleProduct: true},
				}},
				{ID: "v-2", Name: "Premium", Status: domain.StatusLive, Detail: &domain.VariantDetail{
					Schemes: domain.SchemeFlags{RecommendedProduct: true},
				}},
				{ID: "v-3", Name: "Draft Only", Status: domain.StatusDraft, Detail: &domain.VariantDetail{
					Schemes: domain.SchemeFlags{SaleProduct: true},
				}},
			},
		},
		{
			ID: "e-2", Title: "SpO2 Probe", Category: "sensors",
			Variants: []domain.Variant{
				{ID: "v-4", Name: "Adult", Status: domain.StatusLive, Detail: &domain.VariantDetail{}},
				{ID: "v-5", Name: "Neonatal", Status: domain.StatusLive},
			},
		},
	}}
}

func TestExecute(t *testing.T) {
	t.Run("filters live variants by one flag", func(t *testing.T) {
		rows, err := NewQuery(fixture()).Execute(context.Background(), &Request{Scheme: domain.SchemeSale})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "v-1", rows[0].VariantID)
	})

	t.Run("all returns every flagged live variant", func(t *testing.T) {
		rows, err := NewQuery(fixture()).Execute(context.Background(), &Request{Scheme: SchemeAll})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "v-1", rows[0].VariantID)
		assert.Equal(t, "v-2", rows[1].VariantID)
	})

	t.Run("every result carries the full normalized flag record", func(t *testing.T) {
		rows, err := NewQuery(fixture()).Execute(context.Background(), &Request{Scheme: domain.SchemeRecommended})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, domain.SchemeFlags{RecommendedProduct: true}, rows[0].Flags)
	})

	t.Run("duplicate root+variant pairs are OR-merged", func(t *testing.T) {
		rm := &catalogtest.FakeReadModel{Entries: []*domain.Entry{
			{
				ID: "e-1", Title: "Monitor",
				Variants: []domain.Variant{
					{ID: "v-1", Name: "Standard", Status: domain.StatusLive, Detail: &domain.VariantDetail{
						Schemes: domain.SchemeFlags{SaleProduct: true},
					}},
					{ID: "v-1", Name: "Standard", Status: domain.StatusLive, Detail: &domain.VariantDetail{
						Schemes: domain.SchemeFlags{TradingProduct: true},
					}},
				},
			},
		}}

		rows, err := NewQuery(rm).Execute(context.Background(), &Request{Scheme: domain.SchemeTrading})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Flags.SaleProduct)
		assert.True(t, rows[0].Flags.TradingProduct)
	})

	t.Run("rejects an unknown scheme", func(t *testing.T) {
		_, err := NewQuery(fixture()).Execute(context.Background(), &Request{Scheme: "bestseller"})

		assert.ErrorIs(t, err, domain.ErrInvalidScheme)
	})
}
