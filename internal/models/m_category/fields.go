package m_category

// Field name constants for the categories table.
const (
	TableName = "categories"

	CategoryID     = "category_id"
	Name           = "name"
	Slug           = "slug"
	Description    = "description"
	Icon           = "icon"
	DisplayOrder   = "display_order"
	Active         = "active"
	ProductCount   = "product_count"
	CreatedBy      = "created_by"
	LastModifiedBy = "last_modified_by"
	CreatedAt      = "created_at"
	UpdatedAt      = "updated_at"
)
