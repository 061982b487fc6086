package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

// envelope is the uniform response body. Data is omitted on errors, Error
// and Field on success.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

// respondError maps domain errors to HTTP statuses. Unrecognized errors are
// logged and masked as 500s.
func respondError(c echo.Context, err error) error {
	status := statusFor(err)

	body := envelope{Success: false, Error: err.Error()}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body.Field = ve.Field
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).WithFields(log.Fields{
			"method": c.Request().Method,
			"path":   c.Path(),
		}).Error("request failed")
		body.Error = "internal error"
	}
	return c.JSON(status, body)
}

func statusFor(err error) int {
	switch {
	case domain.IsValidation(err),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidDiscount),
		errors.Is(err, domain.ErrInvalidStock),
		errors.Is(err, domain.ErrInvalidSection),
		errors.Is(err, domain.ErrInvalidScheme),
		errors.Is(err, domain.ErrEmptyPatch):
		return http.StatusBadRequest
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTitleTaken),
		errors.Is(err, domain.ErrVariantNameTaken),
		errors.Is(err, domain.ErrCategoryTaken),
		errors.Is(err, domain.ErrCategoryInUse),
		errors.Is(err, committer.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
