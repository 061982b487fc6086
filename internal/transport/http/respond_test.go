package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", domain.NewValidationError("name", "required"), http.StatusBadRequest},
		{"empty patch", domain.ErrEmptyPatch, http.StatusBadRequest},
		{"invalid discount", domain.ErrInvalidDiscount, http.StatusBadRequest},
		{"entry not found", domain.ErrEntryNotFound, http.StatusNotFound},
		{"color not found", domain.ErrColorNotFound, http.StatusNotFound},
		{"title taken", domain.ErrTitleTaken, http.StatusConflict},
		{"category in use", fmt.Errorf("%w: 3 entries", domain.ErrCategoryInUse), http.StatusConflict},
		{"version conflict", committer.ErrVersionConflict, http.StatusConflict},
		{"upload failed", fmt.Errorf("%w: upload \"x.png\"", domain.ErrUploadFailed), http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}
