package contracts

import "context"

// Blob is one file received from a multipart request, held in memory until
// the upload capability stores it.
type Blob struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Uploader stores an image blob and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, blob Blob) (string, error)
}

// Notifier delivers operational notifications about inbound enquiries.
// Delivery failures never fail the submission: the enquiry is already
// persisted by the time notification happens.
type Notifier interface {
	ContactReceived(ctx context.Context, contactID, name, email, phone, message string) error
}
