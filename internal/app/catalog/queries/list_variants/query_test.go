package list_variants

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
			ID: "e-1", Title: "Monitor", Category: "monitors", Status: domain.StatusLive,
			Variants: []domain.Variant{
				{ID: "v-1", Name: "Standard", Status: domain.StatusLive, Detail: &domain.VariantDetail{SpecPoints: []string{"12in display"}}},
				{ID: "v-2", Name: "Premium", Status: domain.StatusDraft},
			},
		},
		{
			ID: "e-2", Title: "SpO2 Probe", Category: "sensors", Status: domain.StatusDraft,
			Variants: []domain.Variant{
				{ID: "v-3", Name: "Adult", Status: domain.StatusLive},
				{ID: "v-4", Name: "Neonatal", Status: domain.StatusEnquiry},
			},
		},
	}}
}

func TestExecute(t *testing.T) {
	t.Run("live view flattens by variant status, not entry status", func(t *testing.T) {
		rows, err := NewQuery(fixture()).Execute(context.Background(), &Request{Live: true})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "v-1", rows[0].VariantID)
		assert.Equal(t, "Monitor", rows[0].Title)
		assert.Equal(t, "monitors", rows[0].Category)
		assert.Equal(t, []string{"12in display"}, rows[0].Detail.SpecPoints)
		assert.Equal(t, "v-3", rows[1].VariantID)
		assert.Equal(t, "SpO2 Probe", rows[1].Title)
	})

	t.Run("backlog view pairs draft with enquiry", func(t *testing.T) {
		rows, err := NewQuery(fixture()).Execute(context.Background(), &Request{Live: false})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "v-2", rows[0].VariantID)
		assert.Equal(t, domain.StatusDraft, rows[0].Status)
		assert.Equal(t, "v-4", rows[1].VariantID)
		assert.Equal(t, domain.StatusEnquiry, rows[1].Status)
	})

	t.Run("empty catalog yields an empty list", func(t *testing.T) {
		rows, err := NewQuery(&catalogtest.FakeReadModel{}).Execute(context.Background(), &Request{Live: true})

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
