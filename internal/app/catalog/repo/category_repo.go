package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/models/m_category"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/query"
)

// CategoryRepo implements CategoryRepository for Spanner.
type CategoryRepo struct {
	client *spanner.Client
	model  *m_category.Model
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(client *spanner.Client) contracts.CategoryRepository {
	return &CategoryRepo{
		client: client,
		model:  m_category.NewModel(),
	}
}

var categoryColumns = []string{
	m_category.CategoryID,
	m_category.Name,
	m_category.Slug,
	m_category.Description,
	m_category.Icon,
	m_category.DisplayOrder,
	m_category.Active,
	m_category.ProductCount,
	m_category.CreatedBy,
	m_category.LastModifiedBy,
	m_category.CreatedAt,
	m_category.UpdatedAt,
}

// GetByID retrieves a category by its numeric identifier.
func (r *CategoryRepo) GetByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	row, err := r.client.Single().ReadRow(ctx, m_category.TableName, spanner.Key{categoryID}, categoryColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to read category: %w", err)
	}
	return rowToCategory(row)
}

// GetBySlug retrieves a category by slug.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	stmt := query.From(m_category.TableName).
		Select(categoryColumns...).
		Where(query.Eq(m_category.Slug, slug)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read category by slug: %w", err)
	}
	return rowToCategory(row)
}

// List returns categories ordered by display order.
func (r *CategoryRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	b := query.From(m_category.TableName).
		Select(categoryColumns...).
		OrderBy(m_category.DisplayOrder, query.Asc)
	if activeOnly {
		b = b.Where(query.Eq(m_category.Active, true))
	}

	iter := r.client.Single().Query(ctx, b.Build())
	defer iter.Stop()

	var categories []*domain.Category
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		category, err := rowToCategory(row)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// SlugExists checks slug uniqueness, optionally excluding one category.
func (r *CategoryRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	b := query.From(m_category.TableName).Where(query.Eq(m_category.Slug, slug))
	if excludeID != 0 {
		b = b.Where(query.Neq(m_category.CategoryID, excludeID))
	}

	iter := r.client.Single().Query(ctx, b.Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return false, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	var count int64
	if err := row.Column(0, &count); err != nil {
		return false, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	return count > 0, nil
}

// NextID returns the next sequential category identifier, starting at 1.
func (r *CategoryRepo) NextID(ctx context.Context) (int64, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) FROM %s", m_category.CategoryID, m_category.TableName),
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate category id: %w", err)
	}
	var max int64
	if err := row.Column(0, &max); err != nil {
		return 0, fmt.Errorf("failed to allocate category id: %w", err)
	}
	return max + 1, nil
}

// InsertMut creates a mutation for inserting a category.
func (r *CategoryRepo) InsertMut(category *domain.Category) *spanner.Mutation {
	return r.model.InsertMut(categoryToData(category))
}

// UpdateMut creates a mutation persisting a modified category.
func (r *CategoryRepo) UpdateMut(category *domain.Category) *spanner.Mutation {
	return r.model.UpdateMut(category.CategoryID, map[string]any{
		m_category.Name:           category.Name,
		m_category.Slug:           category.Slug,
		m_category.Description:    category.Description,
		m_category.Icon:           category.Icon,
		m_category.DisplayOrder:   category.DisplayOrder,
		m_category.Active:         category.Active,
		m_category.LastModifiedBy: category.Metadata.LastModifiedBy,
	})
}

// SetProductCountMut creates a mutation updating the cached product count.
func (r *CategoryRepo) SetProductCountMut(categoryID int64, count int64) *spanner.Mutation {
	return r.model.UpdateMut(categoryID, map[string]any{
		m_category.ProductCount: count,
	})
}

// DeleteMut creates a mutation for deleting a category.
func (r *CategoryRepo) DeleteMut(categoryID int64) *spanner.Mutation {
	return r.model.DeleteMut(categoryID)
}

func categoryToData(category *domain.Category) *m_category.Data {
	return &m_category.Data{
		CategoryID:     category.CategoryID,
		Name:           category.Name,
		Slug:           category.Slug,
		Description:    category.Description,
		Icon:           category.Icon,
		DisplayOrder:   category.DisplayOrder,
		Active:         category.Active,
		ProductCount:   category.Metadata.ProductCount,
		CreatedBy:      category.Metadata.CreatedBy,
		LastModifiedBy: category.Metadata.LastModifiedBy,
	}
}

func rowToCategory(row *spanner.Row) (*domain.Category, error) {
	var data m_category.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse category row: %w", err)
	}
	return &domain.Category{
		CategoryID:   data.CategoryID,
		Name:         data.Name,
		Slug:         data.Slug,
		Description:  data.Description,
		Icon:         data.Icon,
		DisplayOrder: data.DisplayOrder,
		Active:       data.Active,
		Metadata: domain.CategoryMetadata{
			ProductCount:   data.ProductCount,
			CreatedBy:      data.CreatedBy,
			LastModifiedBy: data.LastModifiedBy,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
