package m_entry

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data is the database row for the catalog_entries table. Title, category
// and status are extracted from the document into their own columns so they
// can be indexed and filtered without JSON functions; Document carries the
// full nested entry as JSON.
type Data struct {
	EntryID   string           `spanner:"entry_id"`
	Title     string           `spanner:"title"`
	Category  string           `spanner:"category"`
	Status    string           `spanner:"status"`
	Document  spanner.NullJSON `spanner:"document"`
	Version   int64            `spanner:"version"`
	CreatedAt time.Time        `spanner:"created_at"`
	UpdatedAt time.Time        `spanner:"updated_at"`
}
