package domain

import "time"

// Contact is an inbound enquiry from the public site. Name, email, phone and
// message are required; company fields are optional.
type Contact struct {
	ContactID       string
	Name            string
	Email           string
	Phone           string
	CompanyName     string
	CompanyEmail    string
	CompanyPhone    string
	CompanyLocation string
	MessageTitle    string
	Message         string
	CreatedAt       time.Time
}

// Validate checks the required contact fields, naming the first missing one.
func (c *Contact) Validate() error {
	switch {
	case c.Name == "":
		return NewValidationError("name", "required")
	case c.Email == "":
		return NewValidationError("email", "required")
	case c.Phone == "":
		return NewValidationError("phone", "required")
	case c.Message == "":
		return NewValidationError("message", "required")
	}
	return nil
}
