package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_color"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_entry"
)

// Multipart intake for the patch endpoints. Admin clients are lenient with
// shapes: a list may arrive as repeated keys or as one JSON array string,
// and index directives in any of the forms DecodeIndexes accepts. Presence
// of a key is what marks a field as part of the patch.

func formValue(form *multipart.Form, key string) (string, bool) {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// stringList normalizes a list field: repeated keys as-is, a single
// JSON-array value decoded, anything else a one-element list.
func stringList(form *multipart.Form, key string) ([]string, bool) {
	values, ok := form.Value[key]
	if !ok {
		return nil, false
	}
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var decoded []string
		if err := json.Unmarshal([]byte(values[0]), &decoded); err == nil {
			return decoded, true
		}
	}
	return values, true
}

// pairList decodes a key/value pair list sent as a JSON array string.
func pairList(form *multipart.Form, key string) ([]domain.KeyValue, bool, error) {
	raw, ok := formValue(form, key)
	if !ok {
		return nil, false, nil
	}
	var pairs []domain.KeyValue
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return nil, true, domain.NewValidationError(key, "must be a JSON array of {key, value}")
	}
	return pairs, true, nil
}

// indexDirective reads a replace/delete directive. The value goes through
// the lenient index decoding, so malformed input degrades instead of
// failing the request.
func indexDirective(form *multipart.Form, key string) (domain.IndexList, bool) {
	values, ok := form.Value[key]
	if !ok {
		return nil, false
	}
	if len(values) == 1 {
		return domain.DecodeIndexes(values[0]), true
	}
	indexes := make(domain.IndexList, 0, len(values))
	for _, v := range values {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			indexes = append(indexes, n)
		}
	}
	return indexes, true
}

// directives assembles the positional directives of one list field from its
// <key>Replace and <key>Delete companions.
func directives(form *multipart.Form, key string) (domain.ArrayDirectives, bool) {
	var d domain.ArrayDirectives
	if idx, ok := indexDirective(form, key+"Replace"); ok {
		d.Replace = idx
		d.HasReplace = true
	}
	if idx, ok := indexDirective(form, key+"Delete"); ok {
		d.Delete = idx
	}
	return d, d.HasReplace || len(d.Delete) > 0
}

func openBlob(header *multipart.FileHeader) (contracts.Blob, error) {
	file, err := header.Open()
	if err != nil {
		return contracts.Blob{}, fmt.Errorf("failed to open upload %q: %w", header.Filename, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return contracts.Blob{}, fmt.Errorf("failed to read upload %q: %w", header.Filename, err)
	}
	return contracts.Blob{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

// fileBlobs reads every uploaded file under key. The second return reports
// key presence, so an empty file list still marks the field as patched.
func fileBlobs(form *multipart.Form, key string) ([]contracts.Blob, bool, error) {
	headers, ok := form.File[key]
	if !ok {
		return nil, false, nil
	}
	blobs := make([]contracts.Blob, 0, len(headers))
	for _, header := range headers {
		blob, err := openBlob(header)
		if err != nil {
			return nil, true, err
		}
		blobs = append(blobs, blob)
	}
	return blobs, true, nil
}

func fileBlob(form *multipart.Form, key string) (*contracts.Blob, error) {
	blobs, ok, err := fileBlobs(form, key)
	if err != nil {
		return nil, err
	}
	if !ok || len(blobs) == 0 {
		return nil, nil
	}
	return &blobs[0], nil
}

func floatField(form *multipart.Form, key string) (*float64, error) {
	raw, ok := formValue(form, key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, domain.NewValidationError(key, "must be a number")
	}
	return &v, nil
}

func intField(form *multipart.Form, key string) (*int64, error) {
	raw, ok := formValue(form, key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(key, "must be an integer")
	}
	return &v, nil
}

func stringField(form *multipart.Form, key string) *string {
	raw, ok := formValue(form, key)
	if !ok {
		return nil
	}
	return &raw
}

// pointListPatch builds the patch for a plain string list: present when the
// incoming key or either directive key appears in the form.
func pointListPatch(form *multipart.Form, key string) *patch_entry.ListPatch[string] {
	incoming, hasIncoming := stringList(form, key)
	d, hasDirectives := directives(form, key)
	if !hasIncoming && !hasDirectives {
		return nil
	}
	return &patch_entry.ListPatch[string]{Incoming: incoming, Directives: d}
}

func pairListPatch(form *multipart.Form, key string) (*patch_entry.ListPatch[domain.KeyValue], error) {
	incoming, hasIncoming, err := pairList(form, key)
	if err != nil {
		return nil, err
	}
	d, hasDirectives := directives(form, key)
	if !hasIncoming && !hasDirectives {
		return nil, nil
	}
	return &patch_entry.ListPatch[domain.KeyValue]{Incoming: incoming, Directives: d}, nil
}

func imageListPatch(form *multipart.Form, key string) (*patch_entry.ImageListPatch, error) {
	blobs, hasFiles, err := fileBlobs(form, key)
	if err != nil {
		return nil, err
	}
	d, hasDirectives := directives(form, key)
	if !hasFiles && !hasDirectives {
		return nil, nil
	}
	return &patch_entry.ImageListPatch{Incoming: blobs, Directives: d}, nil
}

func colorImagePatch(form *multipart.Form, key string) (*patch_color.ImageListPatch, error) {
	blobs, hasFiles, err := fileBlobs(form, key)
	if err != nil {
		return nil, err
	}
	d, hasDirectives := directives(form, key)
	if !hasFiles && !hasDirectives {
		return nil, nil
	}
	return &patch_color.ImageListPatch{Incoming: blobs, Directives: d}, nil
}
