// Package drive stores image blobs in a Google Drive folder and exposes
// their public URLs.
package drive

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
)

const (
	// maxDimension bounds the longer edge of stored images.
	maxDimension = 1600
	jpegQuality  = 85
)

// Uploader implements the upload capability on Google Drive. Oversized
// images are downscaled and re-encoded as JPEG before upload; already small
// blobs pass through untouched.
type Uploader struct {
	service  *drive.Service
	folderID string
	optimize bool
}

// NewUploader creates an Uploader authenticated with a service account
// credentials file. folderID is the Drive folder receiving uploads.
func NewUploader(ctx context.Context, credentialsPath, folderID string, optimize bool) (*Uploader, error) {
	service, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Uploader{service: service, folderID: folderID, optimize: optimize}, nil
}

// Upload stores one blob and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, blob contracts.Blob) (string, error) {
	content := blob.Content
	contentType := blob.ContentType

	if u.optimize {
		optimized, err := downscale(content)
		if err != nil {
			// undecodable payloads are stored as received
			log.WithError(err).WithField("filename", blob.Filename).Warn("image optimization skipped")
		} else if optimized != nil {
			content = optimized
			contentType = "image/jpeg"
		}
	}

	meta := &drive.File{
		Name:     blob.Filename,
		MimeType: contentType,
	}
	if u.folderID != "" {
		meta.Parents = []string{u.folderID}
	}

	file, err := u.service.Files.Create(meta).
		Media(bytes.NewReader(content)).
		Context(ctx).
		Fields("id").
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %q: %w", blob.Filename, err)
	}

	return fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id), nil
}

// downscale bounds the image to maxDimension and re-encodes it as JPEG. It
// returns nil bytes when the image is already within bounds.
func downscale(content []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxDimension && bounds.Dy() <= maxDimension {
		return nil, nil
	}

	resized := imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
