package list_entries

import (
	"context"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// DefaultLimit caps a page when the client does not ask for a size.
const DefaultLimit = 50

// Request contains filtering and pagination parameters.
type Request struct {
	Category string
	Status   string
	Limit    int64
	Offset   int64
}

// Query handles the list entries query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list entries query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a paginated page of entry summaries.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListResult, error) {
	if req.Status != "" {
		if _, err := domain.ParseStatus(req.Status); err != nil {
			return nil, err
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	return q.readModel.ListEntries(ctx, &contracts.ListFilter{
		Category: req.Category,
		Status:   req.Status,
		Limit:    limit,
		Offset:   offset,
	})
}
