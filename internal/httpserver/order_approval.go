package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/internal/logging"
	"github.com/Skotchmaster/restaurant/internal/service"
	"github.com/Skotchmaster/restaurant/internal/transport"
)

type ApprovalHTTP struct {
	Svc *service.ApprovalService
}

func (h *ApprovalHTTP) GetApprovals(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "approval.get_approvals")

	approvals, err := h.Svc.GetApprovals(ctx)
	if err != nil {
		return fail(l, "get_approvals_error", err, "", "cannot get approvals")
	}

	dtos := make([]transport.OrderApprovalDTO, 0, len(approvals))
	for _, a := range approvals {
		dtos = append(dtos, transport.ToOrderApprovalDTO(a))
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ApprovalHTTP) GetApproval(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "approval.get_approval")

	id, err := parseID(c)
	if err != nil {
		return badID(l, "get_approval_error", err)
	}

	approval, err := h.Svc.GetApproval(ctx, id)
	if err != nil {
		return fail(l, "get_approval_error", err, "approval with this id dont exist", "cannot get approval")
	}

	return c.JSON(http.StatusOK, transport.ToOrderApprovalDTO(*approval))
}

func (h *ApprovalHTTP) CreateApproval(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "approval.create_approval")

	var req transport.OrderApprovalDTO
	if err := c.Bind(&req); err != nil {
		return badBody(l, "approval_create_error", err)
	}

	approval, err := transport.ToOrderApproval(req)
	if err != nil {
		return badBody(l, "approval_create_error", err)
	}

	created, err := h.Svc.CreateApproval(ctx, &approval)
	if err != nil {
		return fail(l, "approval_create_error", err, "approval not found", "cannot add approval to db")
	}

	l.Info("create_approval_success", "id", created.ID)
	return c.JSON(http.StatusCreated, transport.ToOrderApprovalDTO(*created))
}

func (h *ApprovalHTTP) UpdateApproval(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "approval.update_approval")

	var req transport.OrderApprovalDTO
	if err := c.Bind(&req); err != nil {
		return badBody(l, "approval_update_error", err)
	}
	if req.ID == 0 {
		return missingID(l, "approval_update_error")
	}

	approval, err := transport.ToOrderApproval(req)
	if err != nil {
		return badBody(l, "approval_update_error", err)
	}

	updated, err := h.Svc.UpdateApproval(ctx, &approval)
	if err != nil {
		return fail(l, "approval_update_error", err, "approval not found", "cannot update approval")
	}

	l.Info("update_approval_success", "id", updated.ID)
	return c.JSON(http.StatusOK, transport.ToOrderApprovalDTO(*updated))
}

func (h *ApprovalHTTP) DeleteApproval(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "approval.delete_approval")

	id, err := parseID(c)
	if err != nil {
		return badID(l, "approval_delete_error", err)
	}

	if err := h.Svc.DeleteApproval(ctx, id); err != nil {
		return fail(l, "approval_delete_error", err, "approval not found", "cannot delete approval from db")
	}

	l.Info("delete_approval_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
