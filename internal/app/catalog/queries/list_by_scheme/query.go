// Package list_by_scheme lists Live variants by merchandising scheme. The
// pseudo-scheme "all" returns every Live variant carrying at least one flag.
package list_by_scheme

import (
	"context"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// SchemeAll selects variants with any flag set.
const SchemeAll = "all"

// Request contains the scheme to filter by: one of the recognized flag
// names, or "all".
type Request struct {
	Scheme string
}

// Row is a flagged Live variant. Flags are normalized: every recognized
// name is present, duplicates for the same root+variant pair OR-merged.
type Row struct {
	EntryID   string             `json:"productId"`
	Title     string             `json:"title"`
	Category  string             `json:"category"`
	VariantID string             `json:"modelId"`
	Name      string             `json:"name"`
	Flags     domain.SchemeFlags `json:"schemes"`
}

// Query handles the list-by-scheme query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list-by-scheme query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns Live variants whose flags match the requested scheme, in
// document order, newest entries first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*Row, error) {
	if req.Scheme != SchemeAll && !domain.IsSchemeName(req.Scheme) {
		return nil, domain.ErrInvalidScheme
	}

	entries, err := q.readModel.ListAllEntries(ctx)
	if err != nil {
		return nil, err
	}

	var rows []*Row
	seen := make(map[[2]string]*Row)
	for _, entry := range entries {
		for i := range entry.Variants {
			variant := &entry.Variants[i]
			if variant.Status != domain.StatusLive || variant.Detail == nil {
				continue
			}
			flags := variant.Detail.Schemes

			key := [2]string{entry.ID, variant.ID}
			if prev, ok := seen[key]; ok {
				prev.Flags = prev.Flags.Or(flags)
				continue
			}
			row := &Row{
				EntryID:   entry.ID,
				Title:     entry.Title,
				Category:  entry.Category,
				VariantID: variant.ID,
				Name:      variant.Name,
				Flags:     flags,
			}
			seen[key] = row
			rows = append(rows, row)
		}
	}

	out := make([]*Row, 0, len(rows))
	for _, row := range rows {
		if req.Scheme == SchemeAll {
			if row.Flags.Any() {
				out = append(out, row)
			}
			continue
		}
		if row.Flags.Get(req.Scheme) {
			out = append(out, row)
		}
	}
	return out, nil
}
