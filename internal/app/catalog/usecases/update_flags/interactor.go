package update_flags

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/models/m_entry"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

// Request carries a partial scheme flag update for one variant. Only
// recognized flag names present in Flags change; unknown names are ignored.
type Request struct {
	VariantID string
	Flags     map[string]bool
}

// Interactor handles the update scheme flags use case.
type Interactor struct {
	repo      contracts.EntryRepository
	committer committer.Applier
}

// NewInteractor creates a new update flags interactor.
func NewInteractor(repo contracts.EntryRepository, cmt committer.Applier) *Interactor {
	return &Interactor{repo: repo, committer: cmt}
}

// Execute merges the partial flag record and returns the normalized result,
// every recognized name present with a boolean value.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.SchemeFlags, error) {
	if req.VariantID == "" {
		return nil, domain.NewValidationError("variantId", "required")
	}
	if len(req.Flags) == 0 {
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

	detail := variant.EnsureDetail()
	detail.Schemes = detail.Schemes.Merge(req.Flags)

	plan := committer.NewPlan()
	mut, err := i.repo.UpdateMut(entry)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	err = i.committer.ApplyWithVersionCheck(ctx, m_entry.TableName, spanner.Key{entry.ID}, m_entry.Version, loadedVersion, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to commit flag update: %w", err)
	}
	return &detail.Schemes, nil
}
