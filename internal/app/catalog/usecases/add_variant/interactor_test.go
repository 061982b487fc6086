package add_variant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/catalogtest"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

func TestExecute(t *testing.T) {
	seed := func(h *catalogtest.Harness) {
		h.Entries.Seed(&domain.Entry{
			ID:    "e-1",
			Title: "Monitor",
			Variants: []domain.Variant{
				{ID: "v-1", Name: "Standard", Status: domain.StatusLive},
			},
			Version: 2,
		})
	}

	t.Run("appends a variant with an assigned id", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		variant, err := NewInteractor(h.Entries, h.Applier).Execute(context.Background(), &Request{
			EntryID: "e-1",
			Name:    "Pro",
			Status:  "Live",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, variant.ID)
		assert.Equal(t, domain.StatusLive, variant.Status)

		stored := h.Entries.Stored("e-1")
		require.Len(t, stored.Variants, 2)
		assert.Equal(t, "Pro", stored.Variants[1].Name)
	})

	t.Run("status defaults to draft", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		variant, err := NewInteractor(h.Entries, h.Applier).Execute(context.Background(), &Request{
			EntryID: "e-1",
			Name:    "Lite",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusDraft, variant.Status)
	})

	t.Run("duplicate name is rejected case-insensitively", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		_, err := NewInteractor(h.Entries, h.Applier).Execute(context.Background(), &Request{
			EntryID: "e-1",
			Name:    "standard",
		})

		assert.ErrorIs(t, err, domain.ErrVariantNameTaken)
	})

	t.Run("unknown entry fails", func(t *testing.T) {
		h := catalogtest.NewHarness()

		_, err := NewInteractor(h.Entries, h.Applier).Execute(context.Background(), &Request{
			EntryID: "missing",
			Name:    "Pro",
		})

		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	})
}
