// Package products_by_category lists the Live, detail-bearing variants of a
// category for the public category page.
package products_by_category

import (
	"context"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// Request contains the category slug to list.
type Request struct {
	Category string
}

// Row is a flattened Live variant with its detail block.
type Row struct {
	EntryID   string                `json:"productId"`
	Title     string                `json:"title"`
	Category  string                `json:"category"`
	VariantID string                `json:"modelId"`
	Name      string                `json:"name"`
	Detail    *domain.VariantDetail `json:"detail"`
}

// Query handles the products-by-category query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new products-by-category query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute lists the category's Live variants that carry a detail block,
// newest entries first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*Row, error) {
	if req.Category == "" {
		return nil, domain.NewValidationError("category", "required")
	}

	entries, err := q.readModel.ListEntriesByCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	var rows []*Row
	for _, entry := range entries {
		for i := range entry.Variants {
			variant := &entry.Variants[i]
			if variant.Status != domain.StatusLive || variant.Detail == nil {
				continue
			}
			rows = append(rows, &Row{
				EntryID:   entry.ID,
				Title:     entry.Title,
				Category:  entry.Category,
				VariantID: variant.ID,
				Name:      variant.Name,
				Detail:    variant.Detail,
			})
		}
	}
	return rows, nil
}
