package patch_variant_section

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/models/m_entry"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

// Request targets one detail section of a variant. Point sections use
// Points; pair sections use Pairs.
type Request struct {
	VariantID string
	Section   string
	Points    []string
	Pairs     []domain.KeyValue
}

// Interactor handles the patch variant detail section use case.
type Interactor struct {
	repo      contracts.EntryRepository
	committer committer.Applier
}

// NewInteractor creates a new section patch interactor.
func NewInteractor(repo contracts.EntryRepository, cmt committer.Applier) *Interactor {
	return &Interactor{repo: repo, committer: cmt}
}

// Execute applies the section patch, allocating the detail block on first
// use, and returns the updated detail.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.VariantDetail, error) {
	if req.VariantID == "" {
		return nil, domain.NewValidationError("variantId", "required")
	}
	if req.Section == "" {
		return nil, domain.NewValidationError("section", "required")
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
	if err := detail.ApplySection(req.Section, req.Points, req.Pairs); err != nil {
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
		return nil, fmt.Errorf("failed to commit section patch: %w", err)
	}
	return detail, nil
}
