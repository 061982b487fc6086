package domain

import "time"

// Category is a catalog grouping with a cached product count. Unlike the
// nested catalog document, categories are flat rows.
type Category struct {
	CategoryID   int64
	Name         string
	Slug         string
	Description  string
	Icon         string
	DisplayOrder int64
	Active       bool
	Metadata     CategoryMetadata
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CategoryMetadata holds bookkeeping fields, including the cached count of
// catalog entries referencing the category.
type CategoryMetadata struct {
	ProductCount   int64  `json:"productCount"`
	CreatedBy      string `json:"createdBy"`
	LastModifiedBy string `json:"lastModifiedBy"`
}
