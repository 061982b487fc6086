package delete_entry

import (
	"context"
	"fmt"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

// Request identifies the entry to delete.
type Request struct {
	EntryID string
}

// Interactor handles the delete entry use case. Deleting the root removes
// the whole document, variants and colors included; stored image blobs are
// left behind.
type Interactor struct {
	repo      contracts.EntryRepository
	committer committer.Applier
}

// NewInteractor creates a new delete entry interactor.
func NewInteractor(repo contracts.EntryRepository, cmt committer.Applier) *Interactor {
	return &Interactor{repo: repo, committer: cmt}
}

// Execute deletes the entry.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.EntryID == "" {
		return domain.NewValidationError("entryId", "required")
	}

	// confirm existence so callers get ErrEntryNotFound, not a silent no-op
	if _, err := i.repo.GetByID(ctx, req.EntryID); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(req.EntryID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit entry deletion: %w", err)
	}
	return nil
}
