package models

import (
	"errors"
	"fmt"
)

var ErrUnknownOrderStatus = errors.New("unknown order status")

// OrderStatus is a closed set. The numeric value is the primary key of the
// matching row in the order_status table.
type OrderStatus int

const (
	OrderStatusAccepted  OrderStatus = 1
	OrderStatusApproved  OrderStatus = 2
	OrderStatusCancelled OrderStatus = 3
	OrderStatusPaid      OrderStatus = 4
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusAccepted:  "ACCEPTED",
	OrderStatusApproved:  "APPROVED",
	OrderStatusCancelled: "CANCELLED",
	OrderStatusPaid:      "PAID",
}

func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusAccepted, OrderStatusApproved, OrderStatusCancelled, OrderStatusPaid}
}

func (s OrderStatus) ID() int { return int(s) }

func (s OrderStatus) String() string {
	if n, ok := orderStatusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("OrderStatus(%d)", int(s))
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusNames[s]
	return ok
}

// ParseOrderStatus looks a status up by its exact name.
func ParseOrderStatus(name string) (OrderStatus, error) {
	for s, n := range orderStatusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrderStatus, name)
}

func OrderStatusByID(id int) (OrderStatus, error) {
	s := OrderStatus(id)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownOrderStatus, id)
	}
	return s, nil
}

// Ptr is a helper for building entities with an optional status.
func (s OrderStatus) Ptr() *OrderStatus { return &s }
