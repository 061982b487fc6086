package get_by_variant

import (
	"context"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// Request contains the variant ID to look up.
type Request struct {
	VariantID string
}

// Sibling is the id+name projection of the other variants under the same
// entry, used to render a model switcher without the full documents.
type Sibling struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Result bundles the owning entry, the target variant and its siblings.
type Result struct {
	Entry    *domain.Entry   `json:"entry"`
	Variant  *domain.Variant `json:"variant"`
	Siblings []Sibling       `json:"allModels"`
}

// Query handles the entry-by-variant query use case.
type Query struct {
	repo contracts.EntryRepository
}

// NewQuery creates a new entry-by-variant query.
func NewQuery(repo contracts.EntryRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute resolves the variant's owning entry. The sibling list includes
// every variant of the entry, the target included, in document order.
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	if req.VariantID == "" {
		return nil, domain.NewValidationError("variantId", "required")
	}

	entry, err := q.repo.GetByVariantID(ctx, req.VariantID)
	if err != nil {
		return nil, err
	}

	variant := entry.Variant(req.VariantID)
	if variant == nil {
		return nil, domain.ErrVariantNotFound
	}

	siblings := make([]Sibling, 0, len(entry.Variants))
	for i := range entry.Variants {
		siblings = append(siblings, Sibling{
			ID:   entry.Variants[i].ID,
			Name: entry.Variants[i].Name,
		})
	}

	return &Result{Entry: entry, Variant: variant, Siblings: siblings}, nil
}
