package submit_contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
)

// Request contains an inbound contact enquiry.
type Request struct {
	Name            string
	Email           string
	Phone           string
	CompanyName     string
	CompanyEmail    string
	CompanyPhone    string
	CompanyLocation string
	MessageTitle    string
	Message         string
}

// Result is the stored enquiry plus the outcome of the outbound
// notification. Notified false never means the enquiry was lost.
type Result struct {
	Contact  *domain.Contact `json:"contact"`
	Notified bool            `json:"notified"`
}

// Interactor handles the submit contact use case.
type Interactor struct {
	repo      contracts.ContactRepository
	notifier  contracts.Notifier
	committer committer.Applier
}

// NewInteractor creates a new submit contact interactor.
func NewInteractor(repo contracts.ContactRepository, notifier contracts.Notifier, cmt committer.Applier) *Interactor {
	return &Interactor{repo: repo, notifier: notifier, committer: cmt}
}

// Execute persists the enquiry, then notifies. Notification failure is
// logged and reported through Result.Notified, never as an error: the
// enquiry is already stored.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	contact := &domain.Contact{
		ContactID:       uuid.New().String(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		CompanyName:     req.CompanyName,
		CompanyEmail:    req.CompanyEmail,
		CompanyPhone:    req.CompanyPhone,
		CompanyLocation: req.CompanyLocation,
		MessageTitle:    req.MessageTitle,
		Message:         req.Message,
	}
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(contact))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit contact enquiry: %w", err)
	}

	notified := true
	if err := i.notifier.ContactReceived(ctx, contact.ContactID, contact.Name, contact.Email, contact.Phone, contact.Message); err != nil {
		log.WithError(err).WithField("contact_id", contact.ContactID).Warn("enquiry notification failed")
		notified = false
	}
	return &Result{Contact: contact, Notified: notified}, nil
}
