package create_entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/uploads"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

// Request contains the data needed to create a catalog entry. Image blobs
// are resolved to stored URLs before the document is persisted.
type Request struct {
	Category       string
	Title          string
	Description    string
	Status         string
	Price          float64
	Discount       float64
	Currency       string
	Stock          int64
	MainImages     []contracts.Blob
	GalleryImages  []contracts.Blob
	SpecPoints     []string
	SpecPairs      []domain.KeyValue
	WarrantyPoints []string
}

// Interactor handles the create entry use case.
type Interactor struct {
	repo      contracts.EntryRepository
	resolver  *uploads.Resolver
	committer committer.Applier
}

// NewInteractor creates a new create entry interactor.
func NewInteractor(repo contracts.EntryRepository, resolver *uploads.Resolver, cmt committer.Applier) *Interactor {
	return &Interactor{repo: repo, resolver: resolver, committer: cmt}
}

// Execute creates the entry and returns its assigned identifier.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Entry, error) {
	if err := i.validate(req); err != nil {
		return nil, err
	}

	status := domain.StatusDraft
	if req.Status != "" {
		parsed, err := domain.ParseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	taken, err := i.repo.TitleExists(ctx, req.Title, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrTitleTaken
	}

	mainImages, err := i.resolver.Resolve(ctx, req.MainImages)
	if err != nil {
		return nil, err
	}
	galleryImages, err := i.resolver.Resolve(ctx, req.GalleryImages)
	if err != nil {
		return nil, err
	}

	entry := &domain.Entry{
		ID:          uuid.New().String(),
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Price: domain.PriceBlock{
			Currency: req.Currency,
			Price:    req.Price,
			Discount: req.Discount,
		},
		Stock:          req.Stock,
		MainImages:     mainImages,
		GalleryImages:  galleryImages,
		SpecPoints:     req.SpecPoints,
		SpecPairs:      req.SpecPairs,
		WarrantyPoints: req.WarrantyPoints,
		Version:        1,
	}

	if err := entry.Price.Validate(); err != nil {
		return nil, err
	}
	entry.Price.Recompute()

	plan := committer.NewPlan()
	mut, err := i.repo.InsertMut(entry)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit entry creation: %w", err)
	}
	return entry, nil
}

func (i *Interactor) validate(req *Request) error {
	if req.Title == "" {
		return domain.NewValidationError("title", "required")
	}
	if req.Category == "" {
		return domain.NewValidationError("category", "required")
	}
	if req.Stock < 0 {
		return domain.ErrInvalidStock
	}
	return nil
}
