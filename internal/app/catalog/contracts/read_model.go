package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// EntrySummary is the list-view projection of a catalog entry. FinalPrice is
// computed from the stored price block, never read from client input.
type EntrySummary struct {
	EntryID      string
	Title        string
	Category     string
	Status       string
	Price        float64
	Discount     float64
	FinalPrice   float64
	Currency     string
	MainImage    string
	VariantCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ListFilter defines filtering options for listing catalog entries.
type ListFilter struct {
	Category string
	Status   string
	Limit    int64
	Offset   int64
}

// ListResult is a page of entry summaries with the unpaginated total.
type ListResult struct {
	Entries    []*EntrySummary
	TotalCount int64
}

// ReadModel defines list-shaped queries over the catalog. Read queries load
// documents directly and may bypass the domain write path.
type ReadModel interface {
	// ListEntries returns a filtered, paginated page of entry summaries.
	ListEntries(ctx context.Context, filter *ListFilter) (*ListResult, error)

	// ListEntriesByStatuses loads the full documents of entries in any of
	// the given statuses, newest first.
	ListEntriesByStatuses(ctx context.Context, statuses []domain.Status) ([]*domain.Entry, error)

	// ListEntriesByCategory loads the full documents of entries in a
	// category.
	ListEntriesByCategory(ctx context.Context, category string) ([]*domain.Entry, error)

	// ListAllEntries loads every entry document. Used by the scheme
	// aggregator, which filters variant flags in memory.
	ListAllEntries(ctx context.Context) ([]*domain.Entry, error)
}
