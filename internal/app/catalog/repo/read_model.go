package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/models/m_entry"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/query"
)

// ReadModel implements list-shaped catalog queries against Spanner. It loads
// documents and projects them in memory: the catalog is admin-sized, so
// document decode cost is dwarfed by the round trip.
type ReadModel struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModel{client: client}
}

// ListEntries returns a filtered, paginated page of entry summaries plus the
// unpaginated total.
func (rm *ReadModel) ListEntries(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	if filter == nil {
		filter = &contracts.ListFilter{}
	}

	b := query.From(m_entry.TableName).
		Select(entryColumns...).
		OrderBy(m_entry.CreatedAt, query.Desc)
	if filter.Category != "" {
		b = b.Where(query.Eq(m_entry.Category, filter.Category))
	}
	if filter.Status != "" {
		b = b.Where(query.Eq(m_entry.Status, filter.Status))
	}

	total, err := rm.count(ctx, b)
	if err != nil {
		return nil, err
	}

	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		b = b.Offset(filter.Offset)
	}

	entries, err := rm.queryEntries(ctx, b)
	if err != nil {
		return nil, err
	}

	summaries := make([]*contracts.EntrySummary, 0, len(entries))
	for _, entry := range entries {
		summaries = append(summaries, summarize(entry))
	}
	return &contracts.ListResult{Entries: summaries, TotalCount: total}, nil
}

// ListEntriesByStatuses loads the documents of entries in any of the given
// statuses, newest first.
func (rm *ReadModel) ListEntriesByStatuses(ctx context.Context, statuses []domain.Status) ([]*domain.Entry, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	b := query.From(m_entry.TableName).
		Select(entryColumns...).
		Where(query.In(m_entry.Status, values)).
		OrderBy(m_entry.CreatedAt, query.Desc)
	return rm.queryEntries(ctx, b)
}

// ListEntriesByCategory loads the documents of entries in a category.
func (rm *ReadModel) ListEntriesByCategory(ctx context.Context, category string) ([]*domain.Entry, error) {
	b := query.From(m_entry.TableName).
		Select(entryColumns...).
		Where(query.Eq(m_entry.Category, category)).
		OrderBy(m_entry.CreatedAt, query.Desc)
	return rm.queryEntries(ctx, b)
}

// ListAllEntries loads every entry document.
func (rm *ReadModel) ListAllEntries(ctx context.Context) ([]*domain.Entry, error) {
	b := query.From(m_entry.TableName).
		Select(entryColumns...).
		OrderBy(m_entry.CreatedAt, query.Desc)
	return rm.queryEntries(ctx, b)
}

func (rm *ReadModel) queryEntries(ctx context.Context, b *query.Builder) ([]*domain.Entry, error) {
	iter := rm.client.Single().Query(ctx, b.Build())
	defer iter.Stop()

	var entries []*domain.Entry
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list catalog entries: %w", err)
		}
		entry, err := rowToEntry(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (rm *ReadModel) count(ctx context.Context, b *query.Builder) (int64, error) {
	iter := rm.client.Single().Query(ctx, b.Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count catalog entries: %w", err)
	}
	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, fmt.Errorf("failed to count catalog entries: %w", err)
	}
	return count, nil
}

func summarize(entry *domain.Entry) *contracts.EntrySummary {
	s := &contracts.EntrySummary{
		EntryID:      entry.ID,
		Title:        entry.Title,
		Category:     entry.Category,
		Status:       string(entry.Status),
		Price:        entry.Price.Price,
		Discount:     entry.Price.Discount,
		FinalPrice:   domain.FinalPrice(entry.Price.Price, entry.Price.Discount),
		Currency:     entry.Price.Currency,
		VariantCount: len(entry.Variants),
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}
	if len(entry.MainImages) > 0 {
		s.MainImage = entry.MainImages[0].URL
	}
	return s
}
