package patch_color

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/uploads"
	"github.com/light-bringer/catalog-admin-service/internal/models/m_entry"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

// ImageListPatch carries unresolved image blobs plus positional directives
// for one of the color's image lists.
type ImageListPatch struct {
	Incoming   []contracts.Blob
	Directives domain.ArrayDirectives
}

// Request contains the color fields a patch may touch. The color is
// addressed by the variant/color identifier chain. Nil means "not part of
// this patch"; price and discount target the authoritative slot 0.
type Request struct {
	VariantID string
	ColorID   string

	Name         *string
	Stock        *int64
	Price        *float64
	Discount     *float64
	PrimaryImage *contracts.Blob

	ProductImages *ImageListPatch
	GalleryImages *ImageListPatch
	Attributes    []domain.KeyValue
}

// Empty reports whether the patch touches nothing.
func (r *Request) Empty() bool {
	return r.Name == nil && r.Stock == nil && r.Price == nil &&
		r.Discount == nil && r.PrimaryImage == nil &&
		r.ProductImages == nil && r.GalleryImages == nil &&
		len(r.Attributes) == 0
}

// Interactor handles the patch color use case.
type Interactor struct {
	repo      contracts.EntryRepository
	resolver  *uploads.Resolver
	committer committer.Applier
}

// NewInteractor creates a new patch color interactor.
func NewInteractor(repo contracts.EntryRepository, resolver *uploads.Resolver, cmt committer.Applier) *Interactor {
	return &Interactor{repo: repo, resolver: resolver, committer: cmt}
}

// Execute applies the patch and returns the updated color. The document is
// mutated in memory only; a single versioned commit persists everything.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Color, error) {
	if req.VariantID == "" {
		return nil, domain.NewValidationError("variantId", "required")
	}
	if req.ColorID == "" {
		return nil, domain.NewValidationError("colorId", "required")
	}
	if req.Empty() {
		return nil, domain.ErrEmptyPatch
	}

	entry, err := i.repo.GetByVariantID(ctx, req.VariantID)
	if err != nil {
		return nil, err
	}
	loadedVersion := entry.Version

	variant := entry.Variant(req.VariantID)
	if variant == nil {
		return nil, domain.ErrVariantNotFound
	}
	if variant.Detail == nil {
		return nil, domain.ErrColorNotFound
	}
	color := variant.Detail.Color(req.ColorID)
	if color == nil {
		return nil, domain.ErrColorNotFound
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, domain.NewValidationError("name", "must not be empty")
		}
		color.Name = *req.Name
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, domain.ErrInvalidStock
		}
		color.Stock = *req.Stock
	}
	if err := color.SetPricing(req.Price, req.Discount); err != nil {
		return nil, err
	}
	if len(req.Attributes) > 0 {
		color.Attributes = domain.MergeKeyValues(color.Attributes, req.Attributes)
	}

	if err := i.applyImages(ctx, color, req); err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	mut, err := i.repo.UpdateMut(entry)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	err = i.committer.ApplyWithVersionCheck(ctx, m_entry.TableName, spanner.Key{entry.ID}, m_entry.Version, loadedVersion, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to commit color patch: %w", err)
	}
	return color, nil
}

func (i *Interactor) applyImages(ctx context.Context, color *domain.Color, req *Request) error {
	if req.PrimaryImage != nil {
		url, err := i.resolver.ResolveOne(ctx, *req.PrimaryImage)
		if err != nil {
			return err
		}
		color.PrimaryImage = url
	}
	if req.ProductImages != nil {
		refs, err := i.resolver.Resolve(ctx, req.ProductImages.Incoming)
		if err != nil {
			return err
		}
		color.ProductImages = domain.Reconcile(color.ProductImages, refs, req.ProductImages.Directives)
	}
	if req.GalleryImages != nil {
		refs, err := i.resolver.Resolve(ctx, req.GalleryImages.Incoming)
		if err != nil {
			return err
		}
		color.GalleryImages = domain.Reconcile(color.GalleryImages, refs, req.GalleryImages.Directives)
	}
	return nil
}
