package domain

import (
	"strings"
	"time"
)

// Status is the lifecycle status shared by catalog entries and variants.
type Status string

const (
	StatusDraft   Status = "Draft"
	StatusLive    Status = "Live"
	StatusEnquiry Status = "Enquiry"
)

// ParseStatus validates a client-supplied status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusLive, StatusEnquiry:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// ImageRef is a stored-URL record produced by the upload capability.
type ImageRef struct {
	URL string `json:"url"`
}

// Entry is the root catalog document. Variants are exclusively owned,
// array-embedded sub-entities; identifiers at every level are assigned at
// creation, stable for the object's lifetime and never reused. Children are
// resolved by identifier chain from the root, never the other way around.
//
// The struct is the persisted document shape: it marshals as the JSON
// document column of the catalog_entries row. Version and timestamps live in
// extracted columns, not in the document.
type Entry struct {
	ID             string     `json:"id"`
	Category       string     `json:"category"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         Status     `json:"status"`
	Price          PriceBlock `json:"price"`
	Stock          int64      `json:"stock"`
	MainImages     []ImageRef `json:"mainImages"`
	GalleryImages  []ImageRef `json:"galleryImages"`
	SpecPoints     []string   `json:"specPoints"`
	SpecPairs      []KeyValue `json:"specPairs"`
	WarrantyPoints []string   `json:"warrantyPoints"`
	Variants       []Variant  `json:"variants"`

	Version   int64     `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Variant is a named configuration of a catalog entry (historically "model").
// Detail stays nil until populated by the first section patch.
type Variant struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Status Status         `json:"status"`
	Detail *VariantDetail `json:"detail"`
}

// VariantDetail is the optional block holding colors, specifications,
// features and scheme flags.
type VariantDetail struct {
	Colors             []Color     `json:"colors"`
	SpecPoints         []string    `json:"specPoints"`
	SpecPairs          []KeyValue  `json:"specPairs"`
	Features           []KeyValue  `json:"features"`
	FeatureIcons       []string    `json:"featureIcons"`
	StandardParameters []string    `json:"standardParameters"`
	OptionalParameters []string    `json:"optionalParameters"`
	WarrantyPoints     []string    `json:"warrantyPoints"`
	Schemes            SchemeFlags `json:"schemes"`
}

// Variant returns the variant with the given id, or nil.
func (e *Entry) Variant(variantID string) *Variant {
	for i := range e.Variants {
		if e.Variants[i].ID == variantID {
			return &e.Variants[i]
		}
	}
	return nil
}

// HasVariantNamed reports whether a variant other than excludeID carries the
// given name, compared case-insensitively. Variant names are unique within
// their parent; excludeID lets a rename skip the variant being renamed.
func (e *Entry) HasVariantNamed(name, excludeID string) bool {
	for i := range e.Variants {
		if e.Variants[i].ID == excludeID {
			continue
		}
		if strings.EqualFold(e.Variants[i].Name, name) {
			return true
		}
	}
	return false
}

// RemoveVariant deletes the variant with the given id, reporting whether it
// was present.
func (e *Entry) RemoveVariant(variantID string) bool {
	for i := range e.Variants {
		if e.Variants[i].ID == variantID {
			e.Variants = append(e.Variants[:i], e.Variants[i+1:]...)
			return true
		}
	}
	return false
}

// EnsureDetail returns the variant's detail block, allocating it on first
// use.
func (v *Variant) EnsureDetail() *VariantDetail {
	if v.Detail == nil {
		v.Detail = &VariantDetail{}
	}
	return v.Detail
}

// Color returns the color with the given id, or nil.
func (d *VariantDetail) Color(colorID string) *Color {
	for i := range d.Colors {
		if d.Colors[i].ID == colorID {
			return &d.Colors[i]
		}
	}
	return nil
}
