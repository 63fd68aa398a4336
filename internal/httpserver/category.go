package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/internal/logging"
	"github.com/Skotchmaster/restaurant/internal/service"
	"github.com/Skotchmaster/restaurant/internal/transport"
)

type CategoryHTTP struct {
	Svc *service.CategoryService
}

func (h *CategoryHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_categories")

	categories, err := h.Svc.GetCategories(ctx)
	if err != nil {
		return fail(l, "get_categories_error", err, "", "cannot get categories")
	}

	dtos := make([]transport.ProductCategoryDTO, 0, len(categories))
	for _, cat := range categories {
		dtos = append(dtos, transport.ToProductCategoryDTO(cat))
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *CategoryHTTP) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_category")

	id, err := parseID(c)
	if err != nil {
		return badID(l, "get_category_error", err)
	}

	category, err := h.Svc.GetCategory(ctx, id)
	if err != nil {
		return fail(l, "get_category_error", err, "category with this id dont exist", "cannot get category")
	}

	return c.JSON(http.StatusOK, transport.ToProductCategoryDTO(*category))
}

func (h *CategoryHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create_category")

	var req transport.ProductCategoryDTO
	if err := c.Bind(&req); err != nil {
		return badBody(l, "category_create_error", err)
	}

	cat := transport.ToProductCategory(req)
	created, err := h.Svc.CreateCategory(ctx, &cat)
	if err != nil {
		return fail(l, "category_create_error", err, "category not found", "cannot add category to db")
	}

	l.Info("create_category_success", "id", created.ID)
	return c.JSON(http.StatusCreated, transport.ToProductCategoryDTO(*created))
}

func (h *CategoryHTTP) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update_category")

	var req transport.ProductCategoryDTO
	if err := c.Bind(&req); err != nil {
		return badBody(l, "category_update_error", err)
	}
	if req.ID == 0 {
		return missingID(l, "category_update_error")
	}

	cat := transport.ToProductCategory(req)
	updated, err := h.Svc.UpdateCategory(ctx, &cat)
	if err != nil {
		return fail(l, "category_update_error", err, "category not found", "cannot update category")
	}

	l.Info("update_category_success", "id", updated.ID)
	return c.JSON(http.StatusOK, transport.ToProductCategoryDTO(*updated))
}

func (h *CategoryHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete_category")

	id, err := parseID(c)
	if err != nil {
		return badID(l, "category_delete_error", err)
	}

	if err := h.Svc.DeleteCategory(ctx, id); err != nil {
		return fail(l, "category_delete_error", err, "category not found", "cannot delete category from db")
	}

	l.Info("delete_category_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
