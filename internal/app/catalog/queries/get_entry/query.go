package get_entry

import (
	"context"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// Request contains the entry ID to retrieve.
type Request struct {
	EntryID string
}

// Query handles the get entry query use case.
type Query struct {
	repo contracts.EntryRepository
}

// NewQuery creates a new get entry query.
func NewQuery(repo contracts.EntryRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute retrieves the full catalog document. Final prices are re-derived
// for display so stale stored values never leak to clients.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Entry, error) {
	if req.EntryID == "" {
		return nil, domain.NewValidationError("entryId", "required")
	}

	entry, err := q.repo.GetByID(ctx, req.EntryID)
	if err != nil {
		return nil, err
	}

	entry.Price.Recompute()
	for vi := range entry.Variants {
		detail := entry.Variants[vi].Detail
		if detail == nil {
			continue
		}
		for ci := range detail.Colors {
			for pi := range detail.Colors[ci].Prices {
				detail.Colors[ci].Prices[pi].Recompute()
			}
		}
	}
	return entry, nil
}
