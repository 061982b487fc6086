// Package list_variants flattens catalog documents into one row per
// variant, split by lifecycle: the Live view for the public site, the
// Draft+Enquiry view for the admin backlog.
package list_variants

import (
	"context"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// Row is a flattened variant: root-level fields copied next to the variant's
// own.
type Row struct {
	EntryID   string                `json:"productId"`
	Title     string                `json:"title"`
	Category  string                `json:"category"`
	VariantID string                `json:"modelId"`
	Name      string                `json:"name"`
	Status    domain.Status         `json:"status"`
	Detail    *domain.VariantDetail `json:"detail"`
}

// Request selects which lifecycle view to list.
type Request struct {
	Live bool
}

// Query handles the list variants query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list variants query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute flattens matching variants, newest entries first. A variant is
// listed when its own status matches the requested view, whatever the root
// entry's status.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*Row, error) {
	wanted := map[domain.Status]bool{
		domain.StatusDraft:   !req.Live,
		domain.StatusEnquiry: !req.Live,
		domain.StatusLive:    req.Live,
	}

	entries, err := q.readModel.ListAllEntries(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*Row, 0, len(entries))
	for _, entry := range entries {
		for i := range entry.Variants {
			variant := &entry.Variants[i]
			if !wanted[variant.Status] {
				continue
			}
			rows = append(rows, &Row{
				EntryID:   entry.ID,
				Title:     entry.Title,
				Category:  entry.Category,
				VariantID: variant.ID,
				Name:      variant.Name,
				Status:    variant.Status,
				Detail:    variant.Detail,
			})
		}
	}
	return rows, nil
}
