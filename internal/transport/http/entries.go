package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/get_entry"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/list_entries"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/create_entry"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/delete_entry"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_entry"
)

// CreateEntry handles POST /api/v1/entries (multipart).
func (h *Handler) CreateEntry(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, domain.NewValidationError("body", "multipart form expected"))
	}

	req := &create_entry.Request{}
	if v := stringField(form, "title"); v != nil {
		req.Title = *v
	}
	if v := stringField(form, "category"); v != nil {
		req.Category = *v
	}
	if v := stringField(form, "description"); v != nil {
		req.Description = *v
	}
	if v := stringField(form, "status"); v != nil {
		req.Status = *v
	}
	if v := stringField(form, "currency"); v != nil {
		req.Currency = *v
	}
	if v, err := floatField(form, "price"); err != nil {
		return respondError(c, err)
	} else if v != nil {
		req.Price = *v
	}
	if v, err := floatField(form, "discount"); err != nil {
		return respondError(c, err)
	} else if v != nil {
		req.Discount = *v
	}
	if v, err := intField(form, "stock"); err != nil {
		return respondError(c, err)
	} else if v != nil {
		req.Stock = *v
	}
	if points, ok := stringList(form, "specPoints"); ok {
		req.SpecPoints = points
	}
	if points, ok := stringList(form, "warrantyPoints"); ok {
		req.WarrantyPoints = points
	}
	pairs, ok, err := pairList(form, "specPairs")
	if err != nil {
		return respondError(c, err)
	}
	if ok {
		req.SpecPairs = pairs
	}
	if blobs, ok, err := fileBlobs(form, "mainImages"); err != nil {
		return respondError(c, err)
	} else if ok {
		req.MainImages = blobs
	}
	if blobs, ok, err := fileBlobs(form, "galleryImages"); err != nil {
		return respondError(c, err)
	} else if ok {
		req.GalleryImages = blobs
	}

	entry, err := h.createEntry.Execute(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, entry)
}

// GetEntry handles GET /api/v1/entries/:id.
func (h *Handler) GetEntry(c echo.Context) error {
	entry, err := h.getEntry.Execute(c.Request().Context(), &get_entry.Request{
		EntryID: c.Param("id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, entry)
}

// ListEntries handles GET /api/v1/entries.
func (h *Handler) ListEntries(c echo.Context) error {
	req := &list_entries.Request{
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respondError(c, domain.NewValidationError("limit", "must be an integer"))
		}
		req.Limit = v
	}
	if raw := c.QueryParam("offset"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respondError(c, domain.NewValidationError("offset", "must be an integer"))
		}
		req.Offset = v
	}

	result, err := h.listEntries.Execute(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, result)
}

// PatchEntry handles PATCH /api/v1/entries/:id (multipart). Only keys
// present in the form become part of the patch.
func (h *Handler) PatchEntry(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, domain.NewValidationError("body", "multipart form expected"))
	}

	req := &patch_entry.Request{EntryID: c.Param("id")}
	req.Title = stringField(form, "title")
	req.Category = stringField(form, "category")
	req.Description = stringField(form, "description")
	req.Status = stringField(form, "status")
	req.Currency = stringField(form, "currency")
	if req.Price, err = floatField(form, "price"); err != nil {
		return respondError(c, err)
	}
	if req.Discount, err = floatField(form, "discount"); err != nil {
		return respondError(c, err)
	}
	if req.Stock, err = intField(form, "stock"); err != nil {
		return respondError(c, err)
	}

	req.SpecPoints = pointListPatch(form, "specPoints")
	req.WarrantyPoints = pointListPatch(form, "warrantyPoints")
	if patch, err := pairListPatch(form, "specPairs"); err != nil {
		return respondError(c, err)
	} else {
		req.SpecPairs = patch
	}
	if patch, err := imageListPatch(form, "mainImages"); err != nil {
		return respondError(c, err)
	} else {
		req.MainImages = patch
	}
	if patch, err := imageListPatch(form, "galleryImages"); err != nil {
		return respondError(c, err)
	} else {
		req.GalleryImages = patch
	}

	entry, err := h.patchEntry.Execute(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/v1/entries/:id.
func (h *Handler) DeleteEntry(c echo.Context) error {
	err := h.deleteEntry.Execute(c.Request().Context(), &delete_entry.Request{
		EntryID: c.Param("id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil)
}
