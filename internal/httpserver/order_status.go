package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/internal/logging"
	"github.com/Skotchmaster/restaurant/internal/service"
	"github.com/Skotchmaster/restaurant/internal/transport"
)

// StatusHTTP serves the order status lookup. There are no write routes.
type StatusHTTP struct {
	Svc *service.StatusService
}

func (h *StatusHTTP) GetStatuses(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "status.get_statuses")

	statuses, err := h.Svc.GetStatuses(ctx)
	if err != nil {
		return fail(l, "get_statuses_error", err, "", "cannot get order statuses")
	}

	dtos := make([]transport.OrderStatusDTO, 0, len(statuses))
	for _, s := range statuses {
		dtos = append(dtos, transport.ToOrderStatusDTO(s))
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *StatusHTTP) GetStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "status.get_status")

	id, err := parseID(c)
	if err != nil {
		return badID(l, "get_status_error", err)
	}

	status, err := h.Svc.GetStatus(ctx, id)
	if err != nil {
		return fail(l, "get_status_error", err, "order status with this id dont exist", "cannot get order status")
	}

	return c.JSON(http.StatusOK, transport.ToOrderStatusDTO(status))
}
