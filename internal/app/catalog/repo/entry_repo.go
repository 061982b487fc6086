package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/models/m_entry"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/query"
)

// EntryRepo implements EntryRepository for Spanner. The full nested entry is
// stored in the JSON document column; title, category and status are
// mirrored into extracted columns for indexing.
type EntryRepo struct {
	client *spanner.Client
	model  *m_entry.Model
}

// NewEntryRepo creates a new EntryRepo.
func NewEntryRepo(client *spanner.Client) contracts.EntryRepository {
	return &EntryRepo{
		client: client,
		model:  m_entry.NewModel(),
	}
}

var entryColumns = []string{
	m_entry.EntryID,
	m_entry.Title,
	m_entry.Category,
	m_entry.Status,
	m_entry.Document,
	m_entry.Version,
	m_entry.CreatedAt,
	m_entry.UpdatedAt,
}

// GetByID retrieves an entry by ID, reconstructing the document.
func (r *EntryRepo) GetByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	row, err := r.client.Single().ReadRow(ctx, m_entry.TableName, spanner.Key{entryID}, entryColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to read catalog entry: %w", err)
	}
	return rowToEntry(row)
}

// GetByVariantID resolves the root entry owning the given variant by
// searching the variants array of every document.
func (r *EntryRepo) GetByVariantID(ctx context.Context, variantID string) (*domain.Entry, error) {
	stmt := query.From(m_entry.TableName).
		Select(entryColumns...).
		Where(query.Raw(
			"EXISTS(SELECT 1 FROM UNNEST(JSON_QUERY_ARRAY(document, '$.variants')) v WHERE JSON_VALUE(v, '$.id') = @variant_id)",
			map[string]any{"variant_id": variantID},
		)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrVariantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve entry by variant: %w", err)
	}
	return rowToEntry(row)
}

// TitleExists checks title uniqueness, optionally excluding one entry.
func (r *EntryRepo) TitleExists(ctx context.Context, title, excludeID string) (bool, error) {
	b := query.From(m_entry.TableName).Where(query.Eq(m_entry.Title, title))
	if excludeID != "" {
		b = b.Where(query.Neq(m_entry.EntryID, excludeID))
	}
	count, err := r.queryCount(ctx, b)
	if err != nil {
		return false, fmt.Errorf("failed to check title uniqueness: %w", err)
	}
	return count > 0, nil
}

// CountByCategory counts entries referencing a category slug.
func (r *EntryRepo) CountByCategory(ctx context.Context, category string) (int64, error) {
	count, err := r.queryCount(ctx, query.From(m_entry.TableName).Where(query.Eq(m_entry.Category, category)))
	if err != nil {
		return 0, fmt.Errorf("failed to count entries by category: %w", err)
	}
	return count, nil
}

// InsertMut creates a mutation for inserting a new entry.
func (r *EntryRepo) InsertMut(entry *domain.Entry) (*spanner.Mutation, error) {
	data, err := entryToData(entry)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation persisting the modified document with its
// version bumped for optimistic locking.
func (r *EntryRepo) UpdateMut(entry *domain.Entry) (*spanner.Mutation, error) {
	doc, err := encodeDocument(entry)
	if err != nil {
		return nil, err
	}
	return r.model.UpdateMut(entry.ID, map[string]any{
		m_entry.Title:    entry.Title,
		m_entry.Category: entry.Category,
		m_entry.Status:   string(entry.Status),
		m_entry.Document: doc,
		m_entry.Version:  entry.Version + 1,
	}), nil
}

// DeleteMut creates a mutation for deleting an entry.
func (r *EntryRepo) DeleteMut(entryID string) *spanner.Mutation {
	return r.model.DeleteMut(entryID)
}

func (r *EntryRepo) queryCount(ctx context.Context, b *query.Builder) (int64, error) {
	iter := r.client.Single().Query(ctx, b.Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, err
	}
	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func entryToData(entry *domain.Entry) (*m_entry.Data, error) {
	doc, err := encodeDocument(entry)
	if err != nil {
		return nil, err
	}
	return &m_entry.Data{
		EntryID:  entry.ID,
		Title:    entry.Title,
		Category: entry.Category,
		Status:   string(entry.Status),
		Document: doc,
		Version:  entry.Version,
	}, nil
}

// encodeDocument round-trips the entry through encoding/json so the stored
// value is the plain document shape, independent of the Go struct.
func encodeDocument(entry *domain.Entry) (spanner.NullJSON, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return spanner.NullJSON{}, fmt.Errorf("failed to encode entry document: %w", err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return spanner.NullJSON{}, fmt.Errorf("failed to encode entry document: %w", err)
	}
	return spanner.NullJSON{Value: value, Valid: true}, nil
}

func rowToEntry(row *spanner.Row) (*domain.Entry, error) {
	var data m_entry.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse catalog entry row: %w", err)
	}
	return dataToEntry(&data)
}

func dataToEntry(data *m_entry.Data) (*domain.Entry, error) {
	var entry domain.Entry
	if data.Document.Valid {
		raw, err := json.Marshal(data.Document.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode entry document: %w", err)
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("failed to decode entry document: %w", err)
		}
	}

	// extracted columns are authoritative for the metadata they mirror
	entry.ID = data.EntryID
	entry.Title = data.Title
	entry.Category = data.Category
	entry.Status = domain.Status(data.Status)
	entry.Version = data.Version
	entry.CreatedAt = data.CreatedAt
	entry.UpdatedAt = data.UpdatedAt
	return &entry, nil
}
