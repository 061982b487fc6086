package delete_variant

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/models/m_entry"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

// Request identifies the variant to delete.
type Request struct {
	VariantID string
}

// Interactor handles the delete variant use case. Deleting a variant also
// removes its detail block and colors; the identifier is never reused.
type Interactor struct {
	repo      contracts.EntryRepository
	committer committer.Applier
}

// NewInteractor creates a new delete variant interactor.
func NewInteractor(repo contracts.EntryRepository, cmt committer.Applier) *Interactor {
	return &Interactor{repo: repo, committer: cmt}
}

// Execute deletes the variant from its owning entry.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.VariantID == "" {
		return domain.NewValidationError("variantId", "required")
	}

	entry, err := i.repo.GetByVariantID(ctx, req.VariantID)
	if err != nil {
		return err
	}
	loadedVersion := entry.Version

	if !entry.RemoveVariant(req.VariantID) {
		return domain.ErrVariantNotFound
	}

	plan := committer.NewPlan()
	mut, err := i.repo.UpdateMut(entry)
	if err != nil {
		return err
	}
	plan.Add(mut)

	err = i.committer.ApplyWithVersionCheck(ctx, m_entry.TableName, spanner.Key{entry.ID}, m_entry.Version, loadedVersion, plan)
	if err != nil {
		return fmt.Errorf("failed to commit variant deletion: %w", err)
	}
	return nil
}
