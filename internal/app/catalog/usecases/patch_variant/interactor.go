package patch_variant

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/models/m_entry"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

// Request contains the variant fields a patch may touch. Nil means "not
// part of this patch". The variant is addressed by its own identifier; the
// owning entry is resolved from it.
type Request struct {
	VariantID string
	Name      *string
	Status    *string
}

// Interactor handles the patch variant use case.
type Interactor struct {
	repo      contracts.EntryRepository
	committer committer.Applier
}

// NewInteractor creates a new patch variant interactor.
func NewInteractor(repo contracts.EntryRepository, cmt committer.Applier) *Interactor {
	return &Interactor{repo: repo, committer: cmt}
}

// Execute applies the patch and returns the updated variant.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Variant, error) {
	if req.VariantID == "" {
		return nil, domain.NewValidationError("variantId", "required")
	}
	if req.Name == nil && req.Status == nil {
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

	if req.Name != nil && *req.Name != variant.Name {
		if *req.Name == "" {
			return nil, domain.NewValidationError("name", "must not be empty")
		}
		if entry.HasVariantNamed(*req.Name, variant.ID) {
			return nil, domain.ErrVariantNameTaken
		}
		variant.Name = *req.Name
	}
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		variant.Status = status
	}

	plan := committer.NewPlan()
	mut, err := i.repo.UpdateMut(entry)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	err = i.committer.ApplyWithVersionCheck(ctx, m_entry.TableName, spanner.Key{entry.ID}, m_entry.Version, loadedVersion, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to commit variant patch: %w", err)
	}
	return variant, nil
}
