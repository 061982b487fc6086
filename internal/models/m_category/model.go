package m_category

import (
	"cloud.google.com/go/spanner"
)

// Model builds mutations for the categories table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut builds the mutation for inserting a category.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			CategoryID,
			Name,
			Slug,
			Description,
			Icon,
			DisplayOrder,
			Active,
			ProductCount,
			CreatedBy,
			LastModifiedBy,
			CreatedAt,
			UpdatedAt,
		},
		[]any{
			data.CategoryID,
			data.Name,
			data.Slug,
			data.Description,
			data.Icon,
			data.DisplayOrder,
			data.Active,
			data.ProductCount,
			data.CreatedBy,
			data.LastModifiedBy,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut builds the mutation for updating category columns.
func (m *Model) UpdateMut(categoryID int64, updates map[string]any) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]any, 0, len(updates)+1)

	columns = append(columns, CategoryID)
	values = append(values, categoryID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut builds the mutation for deleting a category.
func (m *Model) DeleteMut(categoryID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{categoryID})
}
