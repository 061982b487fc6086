// Package notify delivers operational notifications about inbound contact
// enquiries.
package notify

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Telegram posts enquiry notifications to a Telegram chat via the Bot API.
type Telegram struct {
	client *resty.Client
	token  string
	chatID string
}

// NewTelegram creates a notifier for the given bot token and chat.
func NewTelegram(token, chatID string) *Telegram {
	client := resty.New().
		SetBaseURL("https://api.telegram.org").
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second)

	return &Telegram{client: client, token: token, chatID: chatID}
}

// ContactReceived posts a summary of a new enquiry.
func (t *Telegram) ContactReceived(ctx context.Context, contactID, name, email, phone, message string) error {
	text := fmt.Sprintf(
		"New enquiry %s\nName: %s\nEmail: %s\nPhone: %s\n\n%s",
		contactID, name, email, phone, message,
	)

	resp, err := t.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"chat_id": t.chatID,
			"text":    text,
		}).
		Post(fmt.Sprintf("/bot%s/sendMessage", t.token))
	if err != nil {
		return fmt.Errorf("failed to send telegram notification: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("telegram API returned %s", resp.Status())
	}

	log.WithField("contact_id", contactID).Debug("enquiry notification sent")
	return nil
}

// Noop is the notifier used when Telegram is not configured.
type Noop struct{}

// ContactReceived does nothing.
func (Noop) ContactReceived(context.Context, string, string, string, string, string) error {
	return nil
}
