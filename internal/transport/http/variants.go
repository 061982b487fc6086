package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/get_by_variant"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/list_by_scheme"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/list_variants"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/add_color"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/add_variant"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/delete_variant"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_color"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_variant"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_variant_section"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/update_flags"
)

type addVariantRequest struct {
	Name   string `json:"name" validate:"required"`
	Status string `json:"status"`
}

// AddVariant handles POST /api/v1/entries/:id/variants.
func (h *Handler) AddVariant(c echo.Context) error {
	var body addVariantRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, domain.NewValidationError("body", "malformed JSON"))
	}
	if err := c.Validate(&body); err != nil {
		return respondError(c, domain.NewValidationError("name", "required"))
	}

	variant, err := h.addVariant.Execute(c.Request().Context(), &add_variant.Request{
		EntryID: c.Param("id"),
		Name:    body.Name,
		Status:  body.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, variant)
}

type patchVariantRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// PatchVariant handles PATCH /api/v1/variants/:variantId.
func (h *Handler) PatchVariant(c echo.Context) error {
	var body patchVariantRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, domain.NewValidationError("body", "malformed JSON"))
	}

	variant, err := h.patchVariant.Execute(c.Request().Context(), &patch_variant.Request{
		VariantID: c.Param("variantId"),
		Name:      body.Name,
		Status:    body.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, variant)
}

// DeleteVariant handles DELETE /api/v1/variants/:variantId.
func (h *Handler) DeleteVariant(c echo.Context) error {
	err := h.delVariant.Execute(c.Request().Context(), &delete_variant.Request{
		VariantID: c.Param("variantId"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil)
}

// ListVariants handles GET /api/v1/variants. The live view is the default;
// view=backlog selects Draft and Enquiry variants.
func (h *Handler) ListVariants(c echo.Context) error {
	rows, err := h.listVariants.Execute(c.Request().Context(), &list_variants.Request{
		Live: c.QueryParam("view") != "backlog",
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, rows)
}

// GetByVariant handles GET /api/v1/variants/:variantId.
func (h *Handler) GetByVariant(c echo.Context) error {
	result, err := h.byVariant.Execute(c.Request().Context(), &get_by_variant.Request{
		VariantID: c.Param("variantId"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, result)
}

// ListByScheme handles GET /api/v1/schemes/:scheme.
func (h *Handler) ListByScheme(c echo.Context) error {
	rows, err := h.byScheme.Execute(c.Request().Context(), &list_by_scheme.Request{
		Scheme: c.Param("scheme"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, rows)
}

type sectionRequest struct {
	Points []string          `json:"points"`
	Pairs  []domain.KeyValue `json:"pairs"`
}

// PatchSection handles PUT /api/v1/variants/:variantId/sections/:section.
func (h *Handler) PatchSection(c echo.Context) error {
	var body sectionRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, domain.NewValidationError("body", "malformed JSON"))
	}

	detail, err := h.patchSection.Execute(c.Request().Context(), &patch_variant_section.Request{
		VariantID: c.Param("variantId"),
		Section:   c.Param("section"),
		Points:    body.Points,
		Pairs:     body.Pairs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, detail)
}

// UpdateFlags handles PUT /api/v1/variants/:variantId/schemes. The body is
// a partial flag record; unknown names are ignored by the merge.
func (h *Handler) UpdateFlags(c echo.Context) error {
	var body map[string]bool
	if err := c.Bind(&body); err != nil {
		return respondError(c, domain.NewValidationError("body", "malformed JSON"))
	}

	flags, err := h.updateFlags.Execute(c.Request().Context(), &update_flags.Request{
		VariantID: c.Param("variantId"),
		Flags:     body,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, flags)
}

// AddColor handles POST /api/v1/variants/:variantId/colors (multipart).
func (h *Handler) AddColor(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, domain.NewValidationError("body", "multipart form expected"))
	}

	req := &add_color.Request{VariantID: c.Param("variantId")}
	if v := stringField(form, "name"); v != nil {
		req.Name = *v
	}
	if req.PrimaryImage, err = fileBlob(form, "primaryImage"); err != nil {
		return respondError(c, err)
	}
	if req.ProductImages, _, err = fileBlobs(form, "productImages"); err != nil {
		return respondError(c, err)
	}
	if req.GalleryImages, _, err = fileBlobs(form, "galleryImages"); err != nil {
		return respondError(c, err)
	}
	if req.Price, err = floatField(form, "price"); err != nil {
		return respondError(c, err)
	}
	if req.Discount, err = floatField(form, "discount"); err != nil {
		return respondError(c, err)
	}
	if v, err := intField(form, "stock"); err != nil {
		return respondError(c, err)
	} else if v != nil {
		req.Stock = *v
	}
	pairs, ok, err := pairList(form, "attributes")
	if err != nil {
		return respondError(c, err)
	}
	if ok {
		req.Attributes = pairs
	}

	color, err := h.addColor.Execute(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, color)
}

// PatchColor handles PATCH /api/v1/variants/:variantId/colors/:colorId
// (multipart).
func (h *Handler) PatchColor(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, domain.NewValidationError("body", "multipart form expected"))
	}

	req := &patch_color.Request{
		VariantID: c.Param("variantId"),
		ColorID:   c.Param("colorId"),
	}
	req.Name = stringField(form, "name")
	if req.Stock, err = intField(form, "stock"); err != nil {
		return respondError(c, err)
	}
	if req.Price, err = floatField(form, "price"); err != nil {
		return respondError(c, err)
	}
	if req.Discount, err = floatField(form, "discount"); err != nil {
		return respondError(c, err)
	}
	if req.PrimaryImage, err = fileBlob(form, "primaryImage"); err != nil {
		return respondError(c, err)
	}
	if req.ProductImages, err = colorImagePatch(form, "productImages"); err != nil {
		return respondError(c, err)
	}
	if req.GalleryImages, err = colorImagePatch(form, "galleryImages"); err != nil {
		return respondError(c, err)
	}
	pairs, ok, err := pairList(form, "attributes")
	if err != nil {
		return respondError(c, err)
	}
	if ok {
		req.Attributes = pairs
	}

	color, err := h.patchColor.Execute(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, color)
}
