package patch_color

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/catalogtest"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/uploads"
)

func strp(s string) *string   { return &s }
func f64p(v float64) *float64 { return &v }
func i64p(v int64) *int64     { return &v }

func seed(h *catalogtest.Harness) {
	h.Entries.Seed(&domain.Entry{
		ID:    "e-1",
		Title: "Monitor",
		Variants: []domain.Variant{
			{
				ID:   "v-1",
				Name: "Standard",
				Detail: &domain.VariantDetail{
					Colors: []domain.Color{
						{
							ID:           "c-1",
							Name:         "Slate Grey",
							PrimaryImage: "https://cdn.test/grey.png",
							ProductImages: []domain.ImageRef{
								{URL: "https://cdn.test/grey-0.png"},
								{URL: "https://cdn.test/grey-1.png"},
							},
							Prices:     []domain.PriceBlock{{Currency: "INR", Price: 500, Discount: 10, FinalPrice: 450}},
							Stock:      3,
							Attributes: []domain.KeyValue{{Key: "Finish", Value: "Matte"}},
						},
					},
				},
			},
		},
		Version: 5,
	})
}

func newInteractor(h *catalogtest.Harness, uploader *catalogtest.StaticUploader) *Interactor {
	if uploader == nil {
		uploader = &catalogtest.StaticUploader{}
	}
	return NewInteractor(h.Entries, uploads.NewResolver(uploader, 0), h.Applier)
}

func TestExecute(t *testing.T) {
	t.Run("patches name, stock and slot-0 pricing", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		color, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			VariantID: "v-1",
			ColorID:   "c-1",
			Name:      strp("Charcoal"),
			Stock:     i64p(9),
			Discount:  f64p(50),
		})

		require.NoError(t, err)
		assert.Equal(t, "Charcoal", color.Name)
		assert.Equal(t, int64(9), color.Stock)
		assert.Equal(t, float64(250), color.Prices[0].FinalPrice)

		stored := h.Entries.Stored("e-1")
		assert.Equal(t, "Charcoal", stored.Variants[0].Detail.Colors[0].Name)
		assert.Equal(t, int64(6), stored.Version)
	})

	t.Run("replaces the primary image", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		color, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			VariantID:    "v-1",
			ColorID:      "c-1",
			PrimaryImage: &contracts.Blob{Filename: "charcoal.png"},
		})

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.test/charcoal.png", color.PrimaryImage)
	})

	t.Run("reconciles product images positionally", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		color, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			VariantID: "v-1",
			ColorID:   "c-1",
			ProductImages: &ImageListPatch{
				Incoming:   []contracts.Blob{{Filename: "new.png"}},
				Directives: domain.WithReplace(domain.IndexList{0}),
			},
		})

		require.NoError(t, err)
		require.Len(t, color.ProductImages, 2)
		assert.Equal(t, "https://cdn.test/new.png", color.ProductImages[0].URL)
		assert.Equal(t, "https://cdn.test/grey-1.png", color.ProductImages[1].URL)
	})

	t.Run("merges attributes by key", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		color, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			VariantID: "v-1",
			ColorID:   "c-1",
			Attributes: []domain.KeyValue{
				{Key: "Finish", Value: "Gloss"},
				{Key: "Trim", Value: "Silver"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, []domain.KeyValue{
			{Key: "Finish", Value: "Gloss"},
			{Key: "Trim", Value: "Silver"},
		}, color.Attributes)
	})

	t.Run("upload failure persists nothing", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		_, err := newInteractor(h, &catalogtest.StaticUploader{FailOn: "bad.png"}).Execute(context.Background(), &Request{
			VariantID: "v-1",
			ColorID:   "c-1",
			Name:      strp("Charcoal"),
			GalleryImages: &ImageListPatch{
				Incoming: []contracts.Blob{{Filename: "bad.png"}},
			},
		})

		require.ErrorIs(t, err, domain.ErrUploadFailed)
		stored := h.Entries.Stored("e-1")
		assert.Equal(t, "Slate Grey", stored.Variants[0].Detail.Colors[0].Name)
	})

	t.Run("missing color in the identifier chain", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		_, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			VariantID: "v-1",
			ColorID:   "c-9",
			Name:      strp("X"),
		})

		assert.ErrorIs(t, err, domain.ErrColorNotFound)
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seed(h)

		_, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			VariantID: "v-1",
			ColorID:   "c-1",
		})

		assert.ErrorIs(t, err, domain.ErrEmptyPatch)
	})
}
