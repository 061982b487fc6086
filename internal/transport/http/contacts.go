package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/submit_contact"
)

type contactRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone"`
	CompanyName     string `json:"companyName"`
	CompanyEmail    string `json:"companyEmail" validate:"omitempty,email"`
	CompanyPhone    string `json:"companyPhone"`
	CompanyLocation string `json:"companyLocation"`
	MessageTitle    string `json:"messageTitle"`
	Message         string `json:"message"`
}

// SubmitContact handles POST /api/v1/contacts. Required-field checks live in
// the usecase so the first missing field is named; the validator only vets
// email shapes here.
func (h *Handler) SubmitContact(c echo.Context) error {
	var body contactRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, domain.NewValidationError("body", "malformed JSON"))
	}
	if err := c.Validate(&body); err != nil {
		return respondError(c, domain.NewValidationError("email", "must be a valid address"))
	}

	result, err := h.contact.Execute(c.Request().Context(), &submit_contact.Request{
		Name:            body.Name,
		Email:           body.Email,
		Phone:           body.Phone,
		CompanyName:     body.CompanyName,
		CompanyEmail:    body.CompanyEmail,
		CompanyPhone:    body.CompanyPhone,
		CompanyLocation: body.CompanyLocation,
		MessageTitle:    body.MessageTitle,
		Message:         body.Message,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, result)
}
