package add_color

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/uploads"
	"github.com/light-bringer/catalog-admin-service/internal/models/m_entry"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

// Request contains the data needed to add a color to a variant. A name and
// a primary image are required; everything else is optional.
type Request struct {
	VariantID     string
	Name          string
	PrimaryImage  *contracts.Blob
	ProductImages []contracts.Blob
	GalleryImages []contracts.Blob
	Price         *float64
	Discount      *float64
	Stock         int64
	Attributes    []domain.KeyValue
}

// Interactor handles the add color use case.
type Interactor struct {
	repo      contracts.EntryRepository
	resolver  *uploads.Resolver
	committer committer.Applier
}

// NewInteractor creates a new add color interactor.
func NewInteractor(repo contracts.EntryRepository, resolver *uploads.Resolver, cmt committer.Applier) *Interactor {
	return &Interactor{repo: repo, resolver: resolver, committer: cmt}
}

// Execute appends the color and returns it with its assigned identifier.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Color, error) {
	if req.VariantID == "" {
		return nil, domain.NewValidationError("variantId", "required")
	}
	if req.Name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if req.PrimaryImage == nil {
		return nil, domain.NewValidationError("primaryImage", "required")
	}
	if req.Stock < 0 {
		return nil, domain.ErrInvalidStock
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

	primaryURL, err := i.resolver.ResolveOne(ctx, *req.PrimaryImage)
	if err != nil {
		return nil, err
	}
	productImages, err := i.resolver.Resolve(ctx, req.ProductImages)
	if err != nil {
		return nil, err
	}
	galleryImages, err := i.resolver.Resolve(ctx, req.GalleryImages)
	if err != nil {
		return nil, err
	}

	color := domain.Color{
		ID:            uuid.New().String(),
		Name:          req.Name,
		PrimaryImage:  primaryURL,
		ProductImages: productImages,
		GalleryImages: galleryImages,
		Stock:         req.Stock,
		Attributes:    req.Attributes,
	}
	if err := color.SetPricing(req.Price, req.Discount); err != nil {
		return nil, err
	}

	detail := variant.EnsureDetail()
	detail.Colors = append(detail.Colors, color)

	plan := committer.NewPlan()
	mut, err := i.repo.UpdateMut(entry)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	err = i.committer.ApplyWithVersionCheck(ctx, m_entry.TableName, spanner.Key{entry.ID}, m_entry.Version, loadedVersion, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to commit color addition: %w", err)
	}
	return &color, nil
}
