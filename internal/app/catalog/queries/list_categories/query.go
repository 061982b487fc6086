package list_categories

import (
	"context"
	"sort"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// Request selects which categories to list.
type Request struct {
	ActiveOnly bool
}

// Query handles the list categories query use case.
type Query struct {
	repo contracts.CategoryRepository
}

// NewQuery creates a new list categories query.
func NewQuery(repo contracts.CategoryRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute lists categories sorted by display order, name breaking ties.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*domain.Category, error) {
	categories, err := q.repo.List(ctx, req.ActiveOnly)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].DisplayOrder != categories[j].DisplayOrder {
			return categories[i].DisplayOrder < categories[j].DisplayOrder
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}
