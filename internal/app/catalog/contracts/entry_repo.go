package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// EntryRepository defines persistence for catalog entry documents.
// Repositories return mutations, they don't apply them; usecases collect
// mutations into a commit plan and apply once.
type EntryRepository interface {
	// GetByID loads the full entry document, including version and
	// timestamps from the extracted columns.
	GetByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// GetByVariantID resolves the root entry owning the given variant.
	GetByVariantID(ctx context.Context, variantID string) (*domain.Entry, error)

	// TitleExists checks title uniqueness, excluding one entry so a patch
	// keeping its own title does not self-collide. excludeID may be empty.
	TitleExists(ctx context.Context, title, excludeID string) (bool, error)

	// CountByCategory counts entries referencing a category slug.
	CountByCategory(ctx context.Context, category string) (int64, error)

	// InsertMut creates the mutation for inserting a new entry.
	InsertMut(entry *domain.Entry) (*spanner.Mutation, error)

	// UpdateMut creates the mutation for persisting a modified entry
	// document with its version bumped.
	UpdateMut(entry *domain.Entry) (*spanner.Mutation, error)

	// DeleteMut creates the mutation for deleting an entry.
	DeleteMut(entryID string) *spanner.Mutation
}
