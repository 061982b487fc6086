package m_category

import "time"

// Data is the database row for the categories table. CategoryID is a
// sequential numeric identifier; the slug carries the URL-safe unique name.
type Data struct {
	CategoryID     int64     `spanner:"category_id"`
	Name           string    `spanner:"name"`
	Slug           string    `spanner:"slug"`
	Description    string    `spanner:"description"`
	Icon           string    `spanner:"icon"`
	DisplayOrder   int64     `spanner:"display_order"`
	Active         bool      `spanner:"active"`
	ProductCount   int64     `spanner:"product_count"`
	CreatedBy      string    `spanner:"created_by"`
	LastModifiedBy string    `spanner:"last_modified_by"`
	CreatedAt      time.Time `spanner:"created_at"`
	UpdatedAt      time.Time `spanner:"updated_at"`
}
