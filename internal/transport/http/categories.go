package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/products_by_category"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/manage_categories"
)

func categoryID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("categoryId", "must be an integer")
	}
	return id, nil
}

type createCategoryRequest struct {
	Name         string `json:"name" validate:"required"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	DisplayOrder int64  `json:"displayOrder"`
	Active       bool   `json:"active"`
	CreatedBy    string `json:"createdBy"`
}

// CreateCategory handles POST /api/v1/categories.
func (h *Handler) CreateCategory(c echo.Context) error {
	var body createCategoryRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, domain.NewValidationError("body", "malformed JSON"))
	}
	if err := c.Validate(&body); err != nil {
		return respondError(c, domain.NewValidationError("name", "required"))
	}

	category, err := h.categories.Create(c.Request().Context(), &manage_categories.CreateRequest{
		Name:         body.Name,
		Slug:         body.Slug,
		Description:  body.Description,
		Icon:         body.Icon,
		DisplayOrder: body.DisplayOrder,
		Active:       body.Active,
		CreatedBy:    body.CreatedBy,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, category)
}

type updateCategoryRequest struct {
	Name           *string `json:"name"`
	Slug           *string `json:"slug"`
	Description    *string `json:"description"`
	Icon           *string `json:"icon"`
	DisplayOrder   *int64  `json:"displayOrder"`
	Active         *bool   `json:"active"`
	LastModifiedBy string  `json:"lastModifiedBy"`
}

// UpdateCategory handles PATCH /api/v1/categories/:id.
func (h *Handler) UpdateCategory(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return respondError(c, err)
	}
	var body updateCategoryRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, domain.NewValidationError("body", "malformed JSON"))
	}

	category, err := h.categories.Update(c.Request().Context(), &manage_categories.UpdateRequest{
		CategoryID:     id,
		Name:           body.Name,
		Slug:           body.Slug,
		Description:    body.Description,
		Icon:           body.Icon,
		DisplayOrder:   body.DisplayOrder,
		Active:         body.Active,
		LastModifiedBy: body.LastModifiedBy,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/categories/:id.
func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.categories.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil)
}

// ListCategories handles GET /api/v1/categories.
func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.listCategories.Execute(c.Request().Context(), &list_categories.Request{
		ActiveOnly: c.QueryParam("active") == "true",
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, categories)
}

// GetCategory handles GET /api/v1/categories/:id.
func (h *Handler) GetCategory(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return respondError(c, err)
	}
	category, err := h.getCategory.ByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, category)
}

// GetCategoryBySlug handles GET /api/v1/categories/slug/:slug.
func (h *Handler) GetCategoryBySlug(c echo.Context) error {
	category, err := h.getCategory.BySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, category)
}

// ProductsByCategory handles GET /api/v1/categories/slug/:slug/products.
func (h *Handler) ProductsByCategory(c echo.Context) error {
	rows, err := h.byCategory.Execute(c.Request().Context(), &products_by_category.Request{
		Category: c.Param("slug"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, rows)
}

// RefreshCategoryCount handles POST /api/v1/categories/:id/refresh-count.
func (h *Handler) RefreshCategoryCount(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return respondError(c, err)
	}
	count, err := h.categories.RefreshCount(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, map[string]int64{"productCount": count})
}

// RefreshCategoryCounts handles POST /api/v1/categories/refresh-counts.
func (h *Handler) RefreshCategoryCounts(c echo.Context) error {
	if err := h.categories.RefreshAllCounts(c.Request().Context()); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil)
}
