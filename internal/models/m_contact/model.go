package m_contact

import (
	"cloud.google.com/go/spanner"
)

// Model builds mutations for the contacts table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut builds the mutation for inserting a contact enquiry.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			ContactID,
			Name,
			Email,
			Phone,
			CompanyName,
			CompanyEmail,
			CompanyPhone,
			CompanyLocation,
			MessageTitle,
			Message,
			CreatedAt,
		},
		[]any{
			data.ContactID,
			data.Name,
			data.Email,
			data.Phone,
			data.CompanyName,
			data.CompanyEmail,
			data.CompanyPhone,
			data.CompanyLocation,
			data.MessageTitle,
			data.Message,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut builds the mutation for deleting a contact enquiry.
func (m *Model) DeleteMut(contactID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{contactID})
}
