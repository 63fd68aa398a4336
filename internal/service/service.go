package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/restaurant/internal/events"
	"github.com/Skotchmaster/restaurant/internal/logging"
	"github.com/Skotchmaster/restaurant/internal/repo"
)

var ErrValidation = errors.New("validation error")

type Services struct {
	Products     *ProductService
	Categories   *CategoryService
	OrderDetails *OrderDetailService
	Approvals    *ApprovalService
	Statuses     *StatusService
}

// New wires every service onto the same repositories and event publisher.
func New(r *repo.Repos, pub events.Publisher) *Services {
	return &Services{
		Products:     &ProductService{Repo: r.Products, Categories: r.Categories, Events: pub},
		Categories:   &CategoryService{Repo: r.Categories, Events: pub},
		OrderDetails: &OrderDetailService{Repo: r.OrderDetails, Products: r.Products, Events: pub},
		Approvals:    &ApprovalService{Repo: r.Approvals, Orders: r.OrderDetails, Events: pub},
		Statuses:     &StatusService{Repo: r.OrderStatuses},
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func requireName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s is required", field)
	}
	return nil
}

func requireNonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return invalid("%s cannot be negative", field)
	}
	return nil
}

// requireExisting turns a missing referenced row into a validation error.
func requireExisting(what string, id int, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return invalid("%s %d does not exist", what, id)
	}
	return err
}

// publish never fails the caller; the write it reports is already committed.
func publish(ctx context.Context, p events.Publisher, e events.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "type", e.Type, "id", e.ID, "error", err)
	}
}
