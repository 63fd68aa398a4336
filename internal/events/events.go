// Package events publishes entity change notifications.
package events

import (
	"context"
	"sync"
	"time"
)

const (
	ProductCreated       = "product_created"
	ProductUpdated       = "product_updated"
	ProductDeleted       = "product_deleted"
	CategoryCreated      = "category_created"
	CategoryUpdated      = "category_updated"
	CategoryDeleted      = "category_deleted"
	OrderDetailCreated   = "order_detail_created"
	OrderDetailUpdated   = "order_detail_updated"
	OrderDetailDeleted   = "order_detail_deleted"
	OrderApprovalCreated = "order_approval_created"
	OrderApprovalUpdated = "order_approval_updated"
	OrderApprovalDeleted = "order_approval_deleted"
)

type Event struct {
	Type       string    `json:"type"`
	ID         int       `json:"id"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func New(eventType string, id int, data any) Event {
	return Event{Type: eventType, ID: id, Data: data, OccurredAt: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop drops every event. It is used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	Err    error
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.events = append(r.events, e)
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, 0, len(r.events))
	for _, e := range r.events {
		types = append(types, e.Type)
	}
	return types
}
