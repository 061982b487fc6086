package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// ContactRepository defines persistence for contact enquiries.
type ContactRepository interface {
	// GetByID loads a contact enquiry.
	GetByID(ctx context.Context, contactID string) (*domain.Contact, error)

	// List returns enquiries, newest first.
	List(ctx context.Context, limit int64) ([]*domain.Contact, error)

	// InsertMut creates the mutation for inserting an enquiry.
	InsertMut(contact *domain.Contact) *spanner.Mutation

	// DeleteMut creates the mutation for deleting an enquiry.
	DeleteMut(contactID string) *spanner.Mutation
}
