package submit_contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/catalogtest"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

func validRequest() *Request {
	return &Request{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Phone:   "+91-9000000000",
		Message: "Need a quote for 10 monitors.",
	}
}

func TestExecute(t *testing.T) {
	t.Run("persists the enquiry and notifies", func(t *testing.T) {
		h := catalogtest.NewHarness()
		notifier := &catalogtest.RecordingNotifier{}

		result, err := NewInteractor(h.Contacts, notifier, h.Applier).Execute(context.Background(), validRequest())

		require.NoError(t, err)
		require.NotEmpty(t, result.Contact.ContactID)
		assert.True(t, result.Notified)

		stored := h.Contacts.Stored(result.Contact.ContactID)
		require.NotNil(t, stored)
		assert.Equal(t, "Asha Rao", stored.Name)
		assert.Equal(t, []string{result.Contact.ContactID}, notifier.Received)
	})

	t.Run("notification failure does not fail the submission", func(t *testing.T) {
		h := catalogtest.NewHarness()
		notifier := &catalogtest.RecordingNotifier{FailWith: errors.New("telegram unreachable")}

		result, err := NewInteractor(h.Contacts, notifier, h.Applier).Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.False(t, result.Notified)
		assert.NotNil(t, h.Contacts.Stored(result.Contact.ContactID))
	})

	t.Run("names the first missing required field", func(t *testing.T) {
		h := catalogtest.NewHarness()
		notifier := &catalogtest.RecordingNotifier{}

		req := validRequest()
		req.Email = ""
		req.Phone = ""

		_, err := NewInteractor(h.Contacts, notifier, h.Applier).Execute(context.Background(), req)

		require.Error(t, err)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "email", ve.Field)
		assert.Empty(t, h.Applier.Plans)
		assert.Empty(t, notifier.Received)
	})

	t.Run("company fields are optional", func(t *testing.T) {
		h := catalogtest.NewHarness()
		notifier := &catalogtest.RecordingNotifier{}

		req := validRequest()
		req.CompanyName = "Medix Labs"
		req.CompanyLocation = "Pune"

		result, err := NewInteractor(h.Contacts, notifier, h.Applier).Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "Medix Labs", h.Contacts.Stored(result.Contact.ContactID).CompanyName)
	})
}
