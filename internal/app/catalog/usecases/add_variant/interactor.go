package add_variant

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/models/m_entry"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

// Request contains the data needed to add a variant to an entry.
type Request struct {
	EntryID string
	Name    string
	Status  string
}

// Interactor handles the add variant use case.
type Interactor struct {
	repo      contracts.EntryRepository
	committer committer.Applier
}

// NewInteractor creates a new add variant interactor.
func NewInteractor(repo contracts.EntryRepository, cmt committer.Applier) *Interactor {
	return &Interactor{repo: repo, committer: cmt}
}

// Execute appends the variant and returns it with its assigned identifier.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Variant, error) {
	if req.EntryID == "" {
		return nil, domain.NewValidationError("entryId", "required")
	}
	if req.Name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	status := domain.StatusDraft
	if req.Status != "" {
		parsed, err := domain.ParseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	entry, err := i.repo.GetByID(ctx, req.EntryID)
	if err != nil {
		return nil, err
	}
	loadedVersion := entry.Version

	// names are unique within the parent, compared case-insensitively
	if entry.HasVariantNamed(req.Name, "") {
		return nil, domain.ErrVariantNameTaken
	}

	variant := domain.Variant{
		ID:     uuid.New().String(),
		Name:   req.Name,
		Status: status,
	}
	entry.Variants = append(entry.Variants, variant)

	plan := committer.NewPlan()
	mut, err := i.repo.UpdateMut(entry)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	err = i.committer.ApplyWithVersionCheck(ctx, m_entry.TableName, spanner.Key{entry.ID}, m_entry.Version, loadedVersion, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to commit variant addition: %w", err)
	}
	return &variant, nil
}
