// Package manage_categories implements category administration: create,
// update, delete and the cached product count refresh.
package manage_categories

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a category name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// CreateRequest contains the data needed to create a category. An empty
// Slug derives one from the name.
type CreateRequest struct {
	Name         string
	Slug         string
	Description  string
	Icon         string
	DisplayOrder int64
	Active       bool
	CreatedBy    string
}

// UpdateRequest contains the category fields an update may touch.
type UpdateRequest struct {
	CategoryID     int64
	Name           *string
	Slug           *string
	Description    *string
	Icon           *string
	DisplayOrder   *int64
	Active         *bool
	LastModifiedBy string
}

// Interactor handles category administration.
type Interactor struct {
	categories contracts.CategoryRepository
	entries    contracts.EntryRepository
	committer  committer.Applier
}

// NewInteractor creates a new category administration interactor.
func NewInteractor(categories contracts.CategoryRepository, entries contracts.EntryRepository, cmt committer.Applier) *Interactor {
	return &Interactor{categories: categories, entries: entries, committer: cmt}
}

// Create inserts a new category with the next sequential identifier.
func (i *Interactor) Create(ctx context.Context, req *CreateRequest) (*domain.Category, error) {
	if req.Name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}
	if slug == "" {
		return nil, domain.NewValidationError("slug", "cannot be derived from name")
	}

	taken, err := i.categories.SlugExists(ctx, slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrCategoryTaken
	}

	id, err := i.categories.NextID(ctx)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		CategoryID:   id,
		Name:         req.Name,
		Slug:         slug,
		Description:  req.Description,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		Active:       req.Active,
		Metadata: domain.CategoryMetadata{
			CreatedBy:      req.CreatedBy,
			LastModifiedBy: req.CreatedBy,
		},
	}

	plan := committer.NewPlan()
	plan.Add(i.categories.InsertMut(category))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit category creation: %w", err)
	}
	return category, nil
}

// Update patches a category.
func (i *Interactor) Update(ctx context.Context, req *UpdateRequest) (*domain.Category, error) {
	if req.CategoryID == 0 {
		return nil, domain.NewValidationError("categoryId", "required")
	}

	category, err := i.categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, domain.NewValidationError("name", "must not be empty")
		}
		category.Name = *req.Name
	}
	if req.Slug != nil && *req.Slug != category.Slug {
		if *req.Slug == "" {
			return nil, domain.NewValidationError("slug", "must not be empty")
		}
		taken, err := i.categories.SlugExists(ctx, *req.Slug, category.CategoryID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrCategoryTaken
		}
		category.Slug = *req.Slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	if req.Active != nil {
		category.Active = *req.Active
	}
	category.Metadata.LastModifiedBy = req.LastModifiedBy

	plan := committer.NewPlan()
	plan.Add(i.categories.UpdateMut(category))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit category update: %w", err)
	}
	return category, nil
}

// Delete removes a category. It is refused while catalog entries still
// reference the category slug.
func (i *Interactor) Delete(ctx context.Context, categoryID int64) error {
	category, err := i.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}

	count, err := i.entries.CountByCategory(ctx, category.Slug)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %d entries", domain.ErrCategoryInUse, count)
	}

	plan := committer.NewPlan()
	plan.Add(i.categories.DeleteMut(categoryID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit category deletion: %w", err)
	}
	return nil
}

// RefreshCount recomputes the cached product count of one category.
func (i *Interactor) RefreshCount(ctx context.Context, categoryID int64) (int64, error) {
	category, err := i.categories.GetByID(ctx, categoryID)
	if err != nil {
		return 0, err
	}

	count, err := i.entries.CountByCategory(ctx, category.Slug)
	if err != nil {
		return 0, err
	}

	plan := committer.NewPlan()
	plan.Add(i.categories.SetProductCountMut(categoryID, count))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return 0, fmt.Errorf("failed to commit count refresh: %w", err)
	}
	return count, nil
}

// RefreshAllCounts recomputes the cached product count of every category in
// one commit.
func (i *Interactor) RefreshAllCounts(ctx context.Context) error {
	categories, err := i.categories.List(ctx, false)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	for _, category := range categories {
		count, err := i.entries.CountByCategory(ctx, category.Slug)
		if err != nil {
			return err
		}
		if count != category.Metadata.ProductCount {
			plan.Add(i.categories.SetProductCountMut(category.CategoryID, count))
		}
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit count refresh: %w", err)
	}
	return nil
}
