// Package http is the echo transport of the catalog admin service. Handlers
// decode multipart or JSON payloads into usecase requests and render the
// uniform response envelope; all semantics live behind the usecase layer.
package http

import (
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/get_by_variant"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/get_category"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/get_entry"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/list_by_scheme"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/list_entries"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/list_variants"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/products_by_category"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/add_color"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/add_variant"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/create_entry"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/delete_entry"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/delete_variant"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/manage_categories"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_color"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_entry"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_variant"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_variant_section"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/submit_contact"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/update_flags"
)

// Handler carries every usecase and query the HTTP surface exposes.
type Handler struct {
	createEntry  *create_entry.Interactor
	patchEntry   *patch_entry.Interactor
	deleteEntry  *delete_entry.Interactor
	addVariant   *add_variant.Interactor
	patchVariant *patch_variant.Interactor
	delVariant   *delete_variant.Interactor
	patchSection *patch_variant_section.Interactor
	updateFlags  *update_flags.Interactor
	addColor     *add_color.Interactor
	patchColor   *patch_color.Interactor
	categories   *manage_categories.Interactor
	contact      *submit_contact.Interactor

	getEntry       *get_entry.Query
	listEntries    *list_entries.Query
	listVariants   *list_variants.Query
	byVariant      *get_by_variant.Query
	byScheme       *list_by_scheme.Query
	listCategories *list_categories.Query
	getCategory    *get_category.Query
	byCategory     *products_by_category.Query
}

// HandlerOptions bundles the Handler dependencies.
type HandlerOptions struct {
	CreateEntry  *create_entry.Interactor
	PatchEntry   *patch_entry.Interactor
	DeleteEntry  *delete_entry.Interactor
	AddVariant   *add_variant.Interactor
	PatchVariant *patch_variant.Interactor
	DelVariant   *delete_variant.Interactor
	PatchSection *patch_variant_section.Interactor
	UpdateFlags  *update_flags.Interactor
	AddColor     *add_color.Interactor
	PatchColor   *patch_color.Interactor
	Categories   *manage_categories.Interactor
	Contact      *submit_contact.Interactor

	GetEntry       *get_entry.Query
	ListEntries    *list_entries.Query
	ListVariants   *list_variants.Query
	ByVariant      *get_by_variant.Query
	ByScheme       *list_by_scheme.Query
	ListCategories *list_categories.Query
	GetCategory    *get_category.Query
	ByCategory     *products_by_category.Query
}

// NewHandler creates the HTTP handler.
func NewHandler(opts HandlerOptions) *Handler {
	return &Handler{
		createEntry:    opts.CreateEntry,
		patchEntry:     opts.PatchEntry,
		deleteEntry:    opts.DeleteEntry,
		addVariant:     opts.AddVariant,
		patchVariant:   opts.PatchVariant,
		delVariant:     opts.DelVariant,
		patchSection:   opts.PatchSection,
		updateFlags:    opts.UpdateFlags,
		addColor:       opts.AddColor,
		patchColor:     opts.PatchColor,
		categories:     opts.Categories,
		contact:        opts.Contact,
		getEntry:       opts.GetEntry,
		listEntries:    opts.ListEntries,
		listVariants:   opts.ListVariants,
		byVariant:      opts.ByVariant,
		byScheme:       opts.ByScheme,
		listCategories: opts.ListCategories,
		getCategory:    opts.GetCategory,
		byCategory:     opts.ByCategory,
	}
}
