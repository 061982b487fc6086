// Package catalogtest provides in-memory fakes for usecase tests. The fakes
// honor the mutation contract: repository methods stage changes, and nothing
// reaches the store until the applier commits.
package catalogtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/models/m_entry"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

// Harness bundles the fakes with an applier wired to commit their staged
// changes.
type Harness struct {
	Entries    *FakeEntryRepo
	Categories *FakeCategoryRepo
	Contacts   *FakeContactRepo
	Applier    *FakeApplier
}

// NewHarness creates a connected set of fakes.
func NewHarness() *Harness {
	h := &Harness{
		Entries:    NewFakeEntryRepo(),
		Categories: NewFakeCategoryRepo(),
		Contacts:   NewFakeContactRepo(),
	}
	h.Applier = &FakeApplier{commit: func() {
		h.Entries.commit()
		h.Categories.commit()
		h.Contacts.commit()
	}}
	return h
}

// CloneEntry deep-copies an entry, document fields via JSON and metadata
// fields directly.
func CloneEntry(entry *domain.Entry) *domain.Entry {
	raw, err := json.Marshal(entry)
	if err != nil {
		panic(fmt.Sprintf("catalogtest: clone entry: %v", err))
	}
	var out domain.Entry
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("catalogtest: clone entry: %v", err))
	}
	out.Version = entry.Version
	out.CreatedAt = entry.CreatedAt
	out.UpdatedAt = entry.UpdatedAt
	return &out
}

// FakeApplier records commit plans and commits staged fake-repo state.
type FakeApplier struct {
	mu            sync.Mutex
	FailWith      error
	Plans         []*committer.CommitPlan
	VersionChecks []int64
	commit        func()
}

// Apply records the plan and commits staged changes.
func (f *FakeApplier) Apply(_ context.Context, plan *committer.CommitPlan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailWith != nil {
		return f.FailWith
	}
	f.Plans = append(f.Plans, plan)
	if f.commit != nil {
		f.commit()
	}
	return nil
}

// ApplyWithVersionCheck records the expected version and commits.
func (f *FakeApplier) ApplyWithVersionCheck(ctx context.Context, _ string, _ spanner.Key, _ string, expectedVersion int64, plan *committer.CommitPlan) error {
	f.mu.Lock()
	f.VersionChecks = append(f.VersionChecks, expectedVersion)
	f.mu.Unlock()
	return f.Apply(ctx, plan)
}

// FakeEntryRepo is an in-memory EntryRepository.
type FakeEntryRepo struct {
	mu      sync.Mutex
	store   map[string]*domain.Entry
	staged  map[string]*domain.Entry
	deleted []string
}

// NewFakeEntryRepo creates an empty fake.
func NewFakeEntryRepo() *FakeEntryRepo {
	return &FakeEntryRepo{
		store:  make(map[string]*domain.Entry),
		staged: make(map[string]*domain.Entry),
	}
}

// Seed places an entry directly into the store.
func (f *FakeEntryRepo) Seed(entry *domain.Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[entry.ID] = CloneEntry(entry)
}

// Stored returns the committed state of an entry, or nil.
func (f *FakeEntryRepo) Stored(entryID string) *domain.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.store[entryID]
	if !ok {
		return nil
	}
	return CloneEntry(entry)
}

func (f *FakeEntryRepo) GetByID(_ context.Context, entryID string) (*domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.store[entryID]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return CloneEntry(entry), nil
}

func (f *FakeEntryRepo) GetByVariantID(_ context.Context, variantID string) (*domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, entry := range f.store {
		for i := range entry.Variants {
			if entry.Variants[i].ID == variantID {
				return CloneEntry(entry), nil
			}
		}
	}
	return nil, domain.ErrVariantNotFound
}

func (f *FakeEntryRepo) TitleExists(_ context.Context, title, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, entry := range f.store {
		if id != excludeID && strings.EqualFold(entry.Title, title) {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeEntryRepo) CountByCategory(_ context.Context, category string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, entry := range f.store {
		if entry.Category == category {
			count++
		}
	}
	return count, nil
}

func (f *FakeEntryRepo) InsertMut(entry *domain.Entry) (*spanner.Mutation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged[entry.ID] = CloneEntry(entry)
	return spanner.InsertOrUpdate(m_entry.TableName, []string{m_entry.EntryID}, []any{entry.ID}), nil
}

func (f *FakeEntryRepo) UpdateMut(entry *domain.Entry) (*spanner.Mutation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	staged := CloneEntry(entry)
	staged.Version = entry.Version + 1
	f.staged[entry.ID] = staged
	return spanner.Update(m_entry.TableName, []string{m_entry.EntryID}, []any{entry.ID}), nil
}

func (f *FakeEntryRepo) DeleteMut(entryID string) *spanner.Mutation {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, entryID)
	return spanner.Delete(m_entry.TableName, spanner.Key{entryID})
}

func (f *FakeEntryRepo) commit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, entry := range f.staged {
		f.store[id] = entry
	}
	f.staged = make(map[string]*domain.Entry)
	for _, id := range f.deleted {
		delete(f.store, id)
	}
	f.deleted = nil
}

// FakeCategoryRepo is an in-memory CategoryRepository.
type FakeCategoryRepo struct {
	mu      sync.Mutex
	store   map[int64]*domain.Category
	staged  map[int64]*domain.Category
	counts  map[int64]int64
	deleted []int64
}

// NewFakeCategoryRepo creates an empty fake.
func NewFakeCategoryRepo() *FakeCategoryRepo {
	return &FakeCategoryRepo{
		store:  make(map[int64]*domain.Category),
		staged: make(map[int64]*domain.Category),
		counts: make(map[int64]int64),
	}
}

// Seed places a category directly into the store.
func (f *FakeCategoryRepo) Seed(category *domain.Category) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *category
	f.store[category.CategoryID] = &c
}

// Stored returns the committed state of a category, or nil.
func (f *FakeCategoryRepo) Stored(categoryID int64) *domain.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	category, ok := f.store[categoryID]
	if !ok {
		return nil
	}
	c := *category
	return &c
}

func (f *FakeCategoryRepo) GetByID(_ context.Context, categoryID int64) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	category, ok := f.store[categoryID]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	c := *category
	return &c, nil
}

func (f *FakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, category := range f.store {
		if category.Slug == slug {
			c := *category
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (f *FakeCategoryRepo) List(_ context.Context, activeOnly bool) ([]*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Category
	for _, category := range f.store {
		if activeOnly && !category.Active {
			continue
		}
		c := *category
		out = append(out, &c)
	}
	return out, nil
}

func (f *FakeCategoryRepo) SlugExists(_ context.Context, slug string, excludeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, category := range f.store {
		if id != excludeID && category.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeCategoryRepo) NextID(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var max int64
	for id := range f.store {
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

func (f *FakeCategoryRepo) InsertMut(category *domain.Category) *spanner.Mutation {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *category
	f.staged[category.CategoryID] = &c
	return spanner.InsertOrUpdate("categories", []string{"category_id"}, []any{category.CategoryID})
}

func (f *FakeCategoryRepo) UpdateMut(category *domain.Category) *spanner.Mutation {
	return f.InsertMut(category)
}

func (f *FakeCategoryRepo) SetProductCountMut(categoryID int64, count int64) *spanner.Mutation {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[categoryID] = count
	return spanner.Update("categories", []string{"category_id"}, []any{categoryID})
}

func (f *FakeCategoryRepo) DeleteMut(categoryID int64) *spanner.Mutation {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, categoryID)
	return spanner.Delete("categories", spanner.Key{categoryID})
}

func (f *FakeCategoryRepo) commit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, category := range f.staged {
		f.store[id] = category
	}
	f.staged = make(map[int64]*domain.Category)
	for id, count := range f.counts {
		if category, ok := f.store[id]; ok {
			category.Metadata.ProductCount = count
		}
	}
	f.counts = make(map[int64]int64)
	for _, id := range f.deleted {
		delete(f.store, id)
	}
	f.deleted = nil
}

// FakeContactRepo is an in-memory ContactRepository.
type FakeContactRepo struct {
	mu     sync.Mutex
	store  map[string]*domain.Contact
	staged map[string]*domain.Contact
}

// NewFakeContactRepo creates an empty fake.
func NewFakeContactRepo() *FakeContactRepo {
	return &FakeContactRepo{
		store:  make(map[string]*domain.Contact),
		staged: make(map[string]*domain.Contact),
	}
}

// Stored returns the committed state of a contact, or nil.
func (f *FakeContactRepo) Stored(contactID string) *domain.Contact {
	f.mu.Lock()
	defer f.mu.Unlock()
	contact, ok := f.store[contactID]
	if !ok {
		return nil
	}
	c := *contact
	return &c
}

func (f *FakeContactRepo) GetByID(_ context.Context, contactID string) (*domain.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	contact, ok := f.store[contactID]
	if !ok {
		return nil, domain.ErrContactNotFound
	}
	c := *contact
	return &c, nil
}

func (f *FakeContactRepo) List(_ context.Context, _ int64) ([]*domain.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Contact
	for _, contact := range f.store {
		c := *contact
		out = append(out, &c)
	}
	return out, nil
}

func (f *FakeContactRepo) InsertMut(contact *domain.Contact) *spanner.Mutation {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *contact
	f.staged[contact.ContactID] = &c
	return spanner.Insert("contacts", []string{"contact_id"}, []any{contact.ContactID})
}

func (f *FakeContactRepo) DeleteMut(contactID string) *spanner.Mutation {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, contactID)
	return spanner.Delete("contacts", spanner.Key{contactID})
}

func (f *FakeContactRepo) commit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, contact := range f.staged {
		f.store[id] = contact
	}
	f.staged = make(map[string]*domain.Contact)
}

// StaticUploader resolves every blob to a deterministic URL. FailOn makes
// the named blob fail.
type StaticUploader struct {
	FailOn string
	mu     sync.Mutex
	Count  int
}

func (u *StaticUploader) Upload(_ context.Context, blob contracts.Blob) (string, error) {
	if blob.Filename == u.FailOn {
		return "", fmt.Errorf("simulated upload failure for %s", blob.Filename)
	}
	u.mu.Lock()
	u.Count++
	u.mu.Unlock()
	return "https://cdn.test/" + blob.Filename, nil
}

// RecordingNotifier captures notifications; FailWith makes delivery fail.
type RecordingNotifier struct {
	mu       sync.Mutex
	FailWith error
	Received []string
}

func (n *RecordingNotifier) ContactReceived(_ context.Context, contactID, _, _, _, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.FailWith != nil {
		return n.FailWith
	}
	n.Received = append(n.Received, contactID)
	return nil
}

// FakeReadModel serves list queries from a fixed entry slice, in slice order.
// FailWith makes every method fail.
type FakeReadModel struct {
	Entries  []*domain.Entry
	FailWith error
}

func (f *FakeReadModel) ListEntries(_ context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}

	var matched []*domain.Entry
	for _, entry := range f.Entries {
		if filter.Category != "" && entry.Category != filter.Category {
			continue
		}
		if filter.Status != "" && string(entry.Status) != filter.Status {
			continue
		}
		matched = append(matched, entry)
	}
	total := int64(len(matched))

	if filter.Offset > 0 {
		if filter.Offset >= total {
			matched = nil
		} else {
			matched = matched[filter.Offset:]
		}
	}
	if filter.Limit > 0 && int64(len(matched)) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	summaries := make([]*contracts.EntrySummary, 0, len(matched))
	for _, entry := range matched {
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
		summaries = append(summaries, s)
	}
	return &contracts.ListResult{Entries: summaries, TotalCount: total}, nil
}

func (f *FakeReadModel) ListEntriesByStatuses(_ context.Context, statuses []domain.Status) ([]*domain.Entry, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	var out []*domain.Entry
	for _, entry := range f.Entries {
		for _, s := range statuses {
			if entry.Status == s {
				out = append(out, CloneEntry(entry))
				break
			}
		}
	}
	return out, nil
}

func (f *FakeReadModel) ListEntriesByCategory(_ context.Context, category string) ([]*domain.Entry, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	var out []*domain.Entry
	for _, entry := range f.Entries {
		if entry.Category == category {
			out = append(out, CloneEntry(entry))
		}
	}
	return out, nil
}

func (f *FakeReadModel) ListAllEntries(_ context.Context) ([]*domain.Entry, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	out := make([]*domain.Entry, 0, len(f.Entries))
	for _, entry := range f.Entries {
		out = append(out, CloneEntry(entry))
	}
	return out, nil
}
