package m_contact

import "time"

// Data is the database row for the contacts table.
type Data struct {
	ContactID       string    `spanner:"contact_id"`
	Name            string    `spanner:"name"`
	Email           string    `spanner:"email"`
	Phone           string    `spanner:"phone"`
	CompanyName     string    `spanner:"company_name"`
	CompanyEmail    string    `spanner:"company_email"`
	CompanyPhone    string    `spanner:"company_phone"`
	CompanyLocation string    `spanner:"company_location"`
	MessageTitle    string    `spanner:"message_title"`
	Message         string    `spanner:"message"`
	CreatedAt       time.Time `spanner:"created_at"`
}
