package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/internal/logging"
	"github.com/Skotchmaster/restaurant/internal/service"
	"github.com/Skotchmaster/restaurant/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	products, err := h.Svc.GetProducts(ctx)
	if err != nil {
		return fail(l, "get_products_error", err, "", "cannot get products")
	}

	return c.JSON(http.StatusOK, transport.ToProductDTOs(products))
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c)
	if err != nil {
		return badID(l, "get_product_error", err)
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return fail(l, "get_product_error", err, "product with this id dont exist", "cannot get product")
	}

	return c.JSON(http.StatusOK, transport.ToProductDTO(*product))
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.ProductDTO
	if err := c.Bind(&req); err != nil {
		return badBody(l, "product_create_error", err)
	}

	p := transport.ToProduct(req)
	created, err := h.Svc.CreateProduct(ctx, &p)
	if err != nil {
		return fail(l, "product_create_error", err, "product not found", "cannot add product to db")
	}

	l.Info("create_product_success", "id", created.ID)
	return c.JSON(http.StatusCreated, transport.ToProductDTO(*created))
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	var req transport.ProductDTO
	if err := c.Bind(&req); err != nil {
		return badBody(l, "product_update_error", err)
	}
	if req.ID == 0 {
		return missingID(l, "product_update_error")
	}

	p := transport.ToProduct(req)
	updated, err := h.Svc.UpdateProduct(ctx, &p)
	if err != nil {
		return fail(l, "product_update_error", err, "product not found", "cannot update product")
	}

	l.Info("update_product_success", "id", updated.ID)
	return c.JSON(http.StatusOK, transport.ToProductDTO(*updated))
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c)
	if err != nil {
		return badID(l, "product_delete_error", err)
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		return fail(l, "product_delete_error", err, "product not found", "cannot delete product from db")
	}

	l.Info("delete_product_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
