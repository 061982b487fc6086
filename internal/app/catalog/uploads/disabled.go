package uploads

import (
	"context"
	"errors"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
)

// Disabled is the Uploader used when no storage backend is configured.
// Every upload fails, so image-carrying requests get an upload error while
// the rest of the service stays usable.
type Disabled struct{}

// Upload always fails.
func (Disabled) Upload(context.Context, contracts.Blob) (string, error) {
	return "", errors.New("no upload storage configured")
}
