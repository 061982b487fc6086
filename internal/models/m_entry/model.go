package m_entry

import (
	"cloud.google.com/go/spanner"
)

// Model builds mutations for the catalog_entries table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut builds the mutation for inserting a catalog entry.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			EntryID,
			Title,
			Category,
			Status,
			Document,
			Version,
			CreatedAt,
			UpdatedAt,
		},
		[]any{
			data.EntryID,
			data.Title,
			data.Category,
			data.Status,
			data.Document,
			data.Version,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut builds the mutation for updating entry columns. The updates map
// holds column names and new values; updated_at is always stamped.
func (m *Model) UpdateMut(entryID string, updates map[string]any) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]any, 0, len(updates)+1)

	columns = append(columns, EntryID)
	values = append(values, entryID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut builds the mutation for deleting a catalog entry.
func (m *Model) DeleteMut(entryID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{entryID})
}
