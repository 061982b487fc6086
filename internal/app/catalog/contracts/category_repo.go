package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// CategoryRepository defines persistence for product categories.
type CategoryRepository interface {
	// GetByID loads a category by its numeric identifier.
	GetByID(ctx context.Context, categoryID int64) (*domain.Category, error)

	// GetBySlug loads a category by its URL-safe slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)

	// List returns categories ordered by display order. activeOnly limits
	// the result to active ones.
	List(ctx context.Context, activeOnly bool) ([]*domain.Category, error)

	// SlugExists checks slug uniqueness, excluding one category so an
	// update keeping its own slug does not self-collide.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)

	// NextID returns the next sequential category identifier.
	NextID(ctx context.Context) (int64, error)

	// InsertMut creates the mutation for inserting a category.
	InsertMut(category *domain.Category) *spanner.Mutation

	// UpdateMut creates the mutation for persisting a modified category.
	UpdateMut(category *domain.Category) *spanner.Mutation

	// SetProductCountMut creates the mutation updating the cached product
	// count of a category.
	SetProductCountMut(categoryID int64, count int64) *spanner.Mutation

	// DeleteMut creates the mutation for deleting a category.
	DeleteMut(categoryID int64) *spanner.Mutation
}
