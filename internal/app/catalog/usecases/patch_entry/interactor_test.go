package patch_entry

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

func contractsBlob(names ...string) []contracts.Blob {
	blobs := make([]contracts.Blob, len(names))
	for i, n := range names {
		blobs[i] = contracts.Blob{Filename: n, Content: []byte("img")}
	}
	return blobs
}

func seedEntry(h *catalogtest.Harness) *domain.Entry {
	entry := &domain.Entry{
		ID:       "e-1",
		Category: "patient-monitors",
		Title:    "Multipara Monitor",
		Status:   domain.StatusLive,
		Price:    domain.PriceBlock{Currency: "INR", Price: 100, Discount: 20, FinalPrice: 80},
		SpecPoints: []string{
			"12.1 inch display",
			"4 hour battery",
			"Lightweight",
		},
		MainImages: []domain.ImageRef{
			{URL: "https://cdn.test/old-0.png"},
			{URL: "https://cdn.test/old-1.png"},
		},
		Version: 3,
	}
	h.Entries.Seed(entry)
	return entry
}

func newInteractor(h *catalogtest.Harness, uploader *catalogtest.StaticUploader) *Interactor {
	if uploader == nil {
		uploader = &catalogtest.StaticUploader{}
	}
	return NewInteractor(h.Entries, uploads.NewResolver(uploader, 0), h.Applier)
}

func TestExecute_Scalars(t *testing.T) {
	t.Run("patches only the supplied fields", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)

		got, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			EntryID:     "e-1",
			Description: strp("Bedside multiparameter monitor"),
			Stock:       i64p(7),
		})

		require.NoError(t, err)
		assert.Equal(t, "Bedside multiparameter monitor", got.Description)
		assert.Equal(t, int64(7), got.Stock)
		assert.Equal(t, "Multipara Monitor", got.Title)

		stored := h.Entries.Stored("e-1")
		assert.Equal(t, "Bedside multiparameter monitor", stored.Description)
		assert.Equal(t, int64(4), stored.Version)
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)

		_, err := newInteractor(h, nil).Execute(context.Background(), &Request{EntryID: "e-1"})

		assert.ErrorIs(t, err, domain.ErrEmptyPatch)
	})

	t.Run("unknown entry fails fast", func(t *testing.T) {
		h := catalogtest.NewHarness()

		_, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			EntryID: "missing",
			Title:   strp("x"),
		})

		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	})

	t.Run("title collision is rejected", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)
		h.Entries.Seed(&domain.Entry{ID: "e-2", Title: "ECG Machine", Category: "ecg"})

		_, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			EntryID: "e-1",
			Title:   strp("ECG Machine"),
		})

		assert.ErrorIs(t, err, domain.ErrTitleTaken)
	})

	t.Run("keeping the own title does not self-collide", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)

		_, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			EntryID: "e-1",
			Title:   strp("Multipara Monitor"),
			Stock:   i64p(1),
		})

		require.NoError(t, err)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)

		_, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			EntryID: "e-1",
			Status:  strp("Archived"),
		})

		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestExecute_PriceDerivation(t *testing.T) {
	t.Run("final price is recomputed from price and discount", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)

		got, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			EntryID:  "e-1",
			Price:    f64p(200),
			Discount: f64p(25),
		})

		require.NoError(t, err)
		assert.Equal(t, float64(150), got.Price.FinalPrice)
	})

	t.Run("changing only the discount re-derives against stored price", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)

		got, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			EntryID:  "e-1",
			Discount: f64p(50),
		})

		require.NoError(t, err)
		assert.Equal(t, float64(50), got.Price.FinalPrice)
	})

	t.Run("out-of-range discount is rejected", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)

		_, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			EntryID:  "e-1",
			Discount: f64p(120),
		})

		assert.ErrorIs(t, err, domain.ErrInvalidDiscount)
	})
}

func TestExecute_ListReconciliation(t *testing.T) {
	t.Run("no directives appends", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)

		got, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			EntryID:    "e-1",
			SpecPoints: &ListPatch[string]{Incoming: []string{"Touchscreen"}},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"12.1 inch display",
			"4 hour battery",
			"Lightweight",
			"Touchscreen",
		}, got.SpecPoints)
	})

	t.Run("replace targets the original positions", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)

		got, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			EntryID: "e-1",
			SpecPoints: &ListPatch[string]{
				Incoming:   []string{"15 inch display"},
				Directives: domain.WithReplace(domain.IndexList{0}),
			},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"15 inch display", "4 hour battery", "Lightweight"}, got.SpecPoints)
	})

	t.Run("delete wins over replace on the same slot", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)

		got, err := newInteractor(h, nil).Execute(context.Background(), &Request{
			EntryID: "e-1",
			SpecPoints: &ListPatch[string]{
				Incoming: []string{"Ghost"},
				Directives: domain.ArrayDirectives{
					Replace:    domain.IndexList{1},
					HasReplace: true,
					Delete:     domain.IndexList{1},
				},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"12.1 inch display", "Lightweight"}, got.SpecPoints)
	})
}

func TestExecute_ImageReconciliation(t *testing.T) {
	t.Run("uploaded URLs replace at the directed position", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)

		got, err := newInteractor(h, &catalogtest.StaticUploader{}).Execute(context.Background(), &Request{
			EntryID: "e-1",
			MainImages: &ImageListPatch{
				Incoming:   contractsBlob("new.png"),
				Directives: domain.WithReplace(domain.IndexList{1}),
			},
		})

		require.NoError(t, err)
		require.Len(t, got.MainImages, 2)
		assert.Equal(t, "https://cdn.test/old-0.png", got.MainImages[0].URL)
		assert.Equal(t, "https://cdn.test/new.png", got.MainImages[1].URL)
	})

	t.Run("upload failure aborts without persisting anything", func(t *testing.T) {
		h := catalogtest.NewHarness()
		seedEntry(h)

		_, err := newInteractor(h, &catalogtest.StaticUploader{FailOn: "bad.png"}).Execute(context.Background(), &Request{
			EntryID:     "e-1",
			Description: strp("should not persist"),
			GalleryImages: &ImageListPatch{
				Incoming: contractsBlob("bad.png"),
			},
		})

		require.ErrorIs(t, err, domain.ErrUploadFailed)

		stored := h.Entries.Stored("e-1")
		assert.Empty(t, stored.Description)
		assert.Equal(t, int64(3), stored.Version)
	})
}

func TestExecute_VersionCheck(t *testing.T) {
	h := catalogtest.NewHarness()
	seedEntry(h)

	_, err := newInteractor(h, nil).Execute(context.Background(), &Request{
		EntryID: "e-1",
		Stock:   i64p(9),
	})

	require.NoError(t, err)
	require.Len(t, h.Applier.VersionChecks, 1)
	assert.Equal(t, int64(3), h.Applier.VersionChecks[0])
}
