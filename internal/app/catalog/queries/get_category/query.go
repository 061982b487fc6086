package get_category

import (
	"context"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// Query handles category lookups by identifier or slug.
type Query struct {
	repo contracts.CategoryRepository
}

// NewQuery creates a new get category query.
func NewQuery(repo contracts.CategoryRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// ByID retrieves a category by its numeric identifier, active or not.
func (q *Query) ByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	if categoryID == 0 {
		return nil, domain.NewValidationError("categoryId", "required")
	}
	return q.repo.GetByID(ctx, categoryID)
}

// BySlug retrieves an active category by slug. Inactive categories are
// hidden from the slug path, which serves the public site.
func (q *Query) BySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	category, err := q.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !category.Active {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}
