package m_contact

// Field name constants for the contacts table.
const (
	TableName = "contacts"

	ContactID       = "contact_id"
	Name            = "name"
	Email           = "email"
	Phone           = "phone"
	CompanyName     = "company_name"
	CompanyEmail    = "company_email"
	CompanyPhone    = "company_phone"
	CompanyLocation = "company_location"
	MessageTitle    = "message_title"
	Message         = "message"
	CreatedAt       = "created_at"
)
