// Package uploads resolves batches of in-memory image blobs to stored URLs.
package uploads

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
)

// Resolver uploads image batches concurrently while preserving submission
// order in the result. A single failed upload fails the whole batch, so the
// caller never persists a partially-resolved image list. Blobs already
// stored when a later one fails are not rolled back; they stay unreferenced
// in storage.
type Resolver struct {
	uploader contracts.Uploader
	limit    int
}

// NewResolver creates a Resolver. limit caps concurrent uploads; zero or
// negative means no cap.
func NewResolver(uploader contracts.Uploader, limit int) *Resolver {
	return &Resolver{uploader: uploader, limit: limit}
}

// Resolve uploads every blob and returns their URLs at the same positions
// the blobs were submitted in, regardless of completion order.
func (r *Resolver) Resolve(ctx context.Context, blobs []contracts.Blob) ([]domain.ImageRef, error) {
	if len(blobs) == 0 {
		return nil, nil
	}

	refs := make([]domain.ImageRef, len(blobs))

	g, ctx := errgroup.WithContext(ctx)
	if r.limit > 0 {
		g.SetLimit(r.limit)
	}

	for i, blob := range blobs {
		g.Go(func() error {
			url, err := r.uploader.Upload(ctx, blob)
			if err != nil {
				return fmt.Errorf("upload %q: %w", blob.Filename, err)
			}
			refs[i] = domain.ImageRef{URL: url}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	return refs, nil
}

// ResolveOne uploads a single blob and returns its URL.
func (r *Resolver) ResolveOne(ctx context.Context, blob contracts.Blob) (string, error) {
	url, err := r.uploader.Upload(ctx, blob)
	if err != nil {
		return "", fmt.Errorf("%w: upload %q: %v", domain.ErrUploadFailed, blob.Filename, err)
	}
	return url, nil
}
