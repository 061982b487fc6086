package m_entry

// Field name constants for the catalog_entries table.
const (
	TableName = "catalog_entries"

	EntryID   = "entry_id"
	Title     = "title"
	Category  = "category"
	Status    = "status"
	Document  = "document"
	Version   = "version"
	CreatedAt = "created_at"
	UpdatedAt = "updated_at"
)
