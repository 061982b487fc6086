package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/models/m_contact"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/query"
)

// ContactRepo implements ContactRepository for Spanner.
type ContactRepo struct {
	client *spanner.Client
	model  *m_contact.Model
}

// NewContactRepo creates a new ContactRepo.
func NewContactRepo(client *spanner.Client) contracts.ContactRepository {
	return &ContactRepo{
		client: client,
		model:  m_contact.NewModel(),
	}
}

var contactColumns = []string{
	m_contact.ContactID,
	m_contact.Name,
	m_contact.Email,
	m_contact.Phone,
	m_contact.CompanyName,
	m_contact.CompanyEmail,
	m_contact.CompanyPhone,
	m_contact.CompanyLocation,
	m_contact.MessageTitle,
	m_contact.Message,
	m_contact.CreatedAt,
}

// GetByID retrieves a contact enquiry.
func (r *ContactRepo) GetByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	row, err := r.client.Single().ReadRow(ctx, m_contact.TableName, spanner.Key{contactID}, contactColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to read contact: %w", err)
	}
	return rowToContact(row)
}

// List returns enquiries, newest first.
func (r *ContactRepo) List(ctx context.Context, limit int64) ([]*domain.Contact, error) {
	b := query.From(m_contact.TableName).
		Select(contactColumns...).
		OrderBy(m_contact.CreatedAt, query.Desc)
	if limit > 0 {
		b = b.Limit(limit)
	}

	iter := r.client.Single().Query(ctx, b.Build())
	defer iter.Stop()

	var contacts []*domain.Contact
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list contacts: %w", err)
		}
		contact, err := rowToContact(row)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

// InsertMut creates a mutation for inserting an enquiry.
func (r *ContactRepo) InsertMut(contact *domain.Contact) *spanner.Mutation {
	return r.model.InsertMut(&m_contact.Data{
		ContactID:       contact.ContactID,
		Name:            contact.Name,
		Email:           contact.Email,
		Phone:           contact.Phone,
		CompanyName:     contact.CompanyName,
		CompanyEmail:    contact.CompanyEmail,
		CompanyPhone:    contact.CompanyPhone,
		CompanyLocation: contact.CompanyLocation,
		MessageTitle:    contact.MessageTitle,
		Message:         contact.Message,
	})
}

// DeleteMut creates a mutation for deleting an enquiry.
func (r *ContactRepo) DeleteMut(contactID string) *spanner.Mutation {
	return r.model.DeleteMut(contactID)
}

func rowToContact(row *spanner.Row) (*domain.Contact, error) {
	var data m_contact.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse contact row: %w", err)
	}
	return &domain.Contact{
		ContactID:       data.ContactID,
		Name:            data.Name,
		Email:           data.Email,
		Phone:           data.Phone,
		CompanyName:     data.CompanyName,
		CompanyEmail:    data.CompanyEmail,
		CompanyPhone:    data.CompanyPhone,
		CompanyLocation: data.CompanyLocation,
		MessageTitle:    data.MessageTitle,
		Message:         data.Message,
		CreatedAt:       data.CreatedAt,
	}, nil
}
