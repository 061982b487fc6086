// Package patch_entry implements the partial update of a root catalog
// entry: scalar fields behind an allow-list, positional array reconciliation
// for point lists and image lists, and server-side price derivation.
package patch_entry

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

// ListPatch carries incoming elements plus the positional directives for one
// array field.
type ListPatch[T any] struct {
	Incoming   []T
	Directives domain.ArrayDirectives
}

// ImageListPatch carries unresolved image blobs plus positional directives.
// Blobs are uploaded first; the resulting URLs then take the incoming role
// in the reconciliation.
type ImageListPatch struct {
	Incoming   []contracts.Blob
	Directives domain.ArrayDirectives
}

// Request contains the fields a root entry patch may touch. Nil means "not
// part of this patch". Fields outside this set are rejected by the transport
// layer before a Request is built.
type Request struct {
	EntryID string

	Title       *string
	Category    *string
	Description *string
	Status      *string
	Price       *float64
	Discount    *float64
	Currency    *string
	Stock       *int64

	SpecPoints     *ListPatch[string]
	SpecPairs      *ListPatch[domain.KeyValue]
	WarrantyPoints *ListPatch[string]
	MainImages     *ImageListPatch
	GalleryImages  *ImageListPatch
}

// Empty reports whether the patch touches nothing.
func (r *Request) Empty() bool {
	return r.Title == nil && r.Category == nil && r.Description == nil &&
		r.Status == nil && r.Price == nil && r.Discount == nil &&
		r.Currency == nil && r.Stock == nil &&
		r.SpecPoints == nil && r.SpecPairs == nil && r.WarrantyPoints == nil &&
		r.MainImages == nil && r.GalleryImages == nil
}

// Interactor handles the patch entry use case.
type Interactor struct {
	repo      contracts.EntryRepository
	resolver  *uploads.Resolver
	committer committer.Applier
}

// NewInteractor creates a new patch entry interactor.
func NewInteractor(repo contracts.EntryRepository, resolver *uploads.Resolver, cmt committer.Applier) *Interactor {
	return &Interactor{repo: repo, resolver: resolver, committer: cmt}
}

// Execute applies the patch. The entry document is mutated in memory only;
// a single versioned commit persists everything at the end, so an upload
// failure can never part-persist a patch.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Entry, error) {
	if req.EntryID == "" {
		return nil, domain.NewValidationError("entryId", "required")
	}
	if req.Empty() {
		return nil, domain.ErrEmptyPatch
	}

	entry, err := i.repo.GetByID(ctx, req.EntryID)
	if err != nil {
		return nil, err
	}
	loadedVersion := entry.Version

	if err := i.applyScalars(ctx, entry, req); err != nil {
		return nil, err
	}
	i.applyLists(entry, req)
	if err := i.applyImages(ctx, entry, req); err != nil {
		return nil, err
	}

	if req.Price != nil || req.Discount != nil || req.Currency != nil {
		if err := entry.Price.Validate(); err != nil {
			return nil, err
		}
	}
	// derived, never client-set
	entry.Price.Recompute()

	plan := committer.NewPlan()
	mut, err := i.repo.UpdateMut(entry)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	err = i.committer.ApplyWithVersionCheck(ctx, m_entry.TableName, spanner.Key{entry.ID}, m_entry.Version, loadedVersion, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to commit entry patch: %w", err)
	}
	entry.Version = loadedVersion + 1
	return entry, nil
}

func (i *Interactor) applyScalars(ctx context.Context, entry *domain.Entry, req *Request) error {
	if req.Title != nil && *req.Title != entry.Title {
		if *req.Title == "" {
			return domain.NewValidationError("title", "must not be empty")
		}
		taken, err := i.repo.TitleExists(ctx, *req.Title, entry.ID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrTitleTaken
		}
		entry.Title = *req.Title
	}
	if req.Category != nil {
		if *req.Category == "" {
			return domain.NewValidationError("category", "must not be empty")
		}
		entry.Category = *req.Category
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return err
		}
		entry.Status = status
	}
	if req.Price != nil {
		entry.Price.Price = *req.Price
	}
	if req.Discount != nil {
		entry.Price.Discount = *req.Discount
	}
	if req.Currency != nil {
		entry.Price.Currency = *req.Currency
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return domain.ErrInvalidStock
		}
		entry.Stock = *req.Stock
	}
	return nil
}

func (i *Interactor) applyLists(entry *domain.Entry, req *Request) {
	if req.SpecPoints != nil {
		entry.SpecPoints = domain.Reconcile(entry.SpecPoints, req.SpecPoints.Incoming, req.SpecPoints.Directives)
	}
	if req.SpecPairs != nil {
		entry.SpecPairs = domain.Reconcile(entry.SpecPairs, req.SpecPairs.Incoming, req.SpecPairs.Directives)
	}
	if req.WarrantyPoints != nil {
		entry.WarrantyPoints = domain.Reconcile(entry.WarrantyPoints, req.WarrantyPoints.Incoming, req.WarrantyPoints.Directives)
	}
}

func (i *Interactor) applyImages(ctx context.Context, entry *domain.Entry, req *Request) error {
	if req.MainImages != nil {
		refs, err := i.resolver.Resolve(ctx, req.MainImages.Incoming)
		if err != nil {
			return err
		}
		entry.MainImages = domain.Reconcile(entry.MainImages, refs, req.MainImages.Directives)
	}
	if req.GalleryImages != nil {
		refs, err := i.resolver.Resolve(ctx, req.GalleryImages.Incoming)
		if err != nil {
			return err
		}
		entry.GalleryImages = domain.Reconcile(entry.GalleryImages, refs, req.GalleryImages.Directives)
	}
	return nil
}
