package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/internal/logging"
	"github.com/Skotchmaster/restaurant/internal/service"
	"github.com/Skotchmaster/restaurant/internal/transport"
)

type OrderDetailHTTP struct {
	Svc *service.OrderDetailService
}

func (h *OrderDetailHTTP) GetOrderDetails(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_detail.get_order_details")

	orders, err := h.Svc.GetOrderDetails(ctx)
	if err != nil {
		return fail(l, "get_order_details_error", err, "", "cannot get order details")
	}

	dtos := make([]transport.OrderDetailDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, transport.ToOrderDetailDTO(o))
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *OrderDetailHTTP) GetOrderDetail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_detail.get_order_detail")

	id, err := parseID(c)
	if err != nil {
		return badID(l, "get_order_detail_error", err)
	}

	order, err := h.Svc.GetOrderDetail(ctx, id)
	if err != nil {
		return fail(l, "get_order_detail_error", err, "order detail with this id dont exist", "cannot get order detail")
	}

	return c.JSON(http.StatusOK, transport.ToOrderDetailDTO(*order))
}

func (h *OrderDetailHTTP) CreateOrderDetail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_detail.create_order_detail")

	var req transport.OrderDetailDTO
	if err := c.Bind(&req); err != nil {
		return badBody(l, "order_detail_create_error", err)
	}

	order, err := transport.ToOrderDetail(req)
	if err != nil {
		return badBody(l, "order_detail_create_error", err)
	}

	created, err := h.Svc.CreateOrderDetail(ctx, &order)
	if err != nil {
		return fail(l, "order_detail_create_error", err, "order detail not found", "cannot add order detail to db")
	}

	l.Info("create_order_detail_success", "id", created.ID)
	return c.JSON(http.StatusCreated, transport.ToOrderDetailDTO(*created))
}

func (h *OrderDetailHTTP) UpdateOrderDetail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_detail.update_order_detail")

	var req transport.OrderDetailDTO
	if err := c.Bind(&req); err != nil {
		return badBody(l, "order_detail_update_error", err)
	}
	if req.ID == 0 {
		return missingID(l, "order_detail_update_error")
	}

	order, err := transport.ToOrderDetail(req)
	if err != nil {
		return badBody(l, "order_detail_update_error", err)
	}

	updated, err := h.Svc.UpdateOrderDetail(ctx, &order)
	if err != nil {
		return fail(l, "order_detail_update_error", err, "order detail not found", "cannot update order detail")
	}

	l.Info("update_order_detail_success", "id", updated.ID)
	return c.JSON(http.StatusOK, transport.ToOrderDetailDTO(*updated))
}

func (h *OrderDetailHTTP) DeleteOrderDetail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_detail.delete_order_detail")

	id, err := parseID(c)
	if err != nil {
		return badID(l, "order_detail_delete_error", err)
	}

	if err := h.Svc.DeleteOrderDetail(ctx, id); err != nil {
		return fail(l, "order_detail_delete_error", err, "order detail not found", "cannot delete order detail from db")
	}

	l.Info("delete_order_detail_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
