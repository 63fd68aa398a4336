package service

import (
	"context"

	"github.com/Skotchmaster/restaurant/internal/events"
	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/repo"
)

type OrderDetailService struct {
	Repo     *repo.OrderDetailRepo
	Products *repo.ProductRepo
	Events   events.Publisher
}

func (s *OrderDetailService) GetOrderDetail(ctx context.Context, id int) (*models.OrderDetail, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *OrderDetailService) GetOrderDetails(ctx context.Context) ([]models.OrderDetail, error) {
	return s.Repo.GetAll(ctx)
}

func (s *OrderDetailService) CreateOrderDetail(ctx context.Context, o *models.OrderDetail) (*models.OrderDetail, error) {
	saved, err := s.save(ctx, o)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, events.New(events.OrderDetailCreated, saved.ID, orderDetailEvent(saved)))
	return saved, nil
}

func (s *OrderDetailService) UpdateOrderDetail(ctx context.Context, o *models.OrderDetail) (*models.OrderDetail, error) {
	if o.ID == 0 {
		return nil, invalid("id is required")
	}
	saved, err := s.save(ctx, o)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, events.New(events.OrderDetailUpdated, saved.ID, orderDetailEvent(saved)))
	return saved, nil
}

func (s *OrderDetailService) save(ctx context.Context, o *models.OrderDetail) (*models.OrderDetail, error) {
	if o.OrderStatus == nil || !o.OrderStatus.Valid() {
		return nil, invalid("orderStatus is required")
	}
	if err := requireNonNegative("totalAmount", o.TotalAmount); err != nil {
		return nil, err
	}
	for _, id := range o.ProductIDs() {
		_, err := s.Products.GetByID(ctx, id)
		if err := requireExisting("product", id, err); err != nil {
			return nil, err
		}
	}
	return s.Repo.Save(ctx, o)
}

// DeleteOrderDetail removes the order with its approval and product lines.
func (s *OrderDetailService) DeleteOrderDetail(ctx context.Context, id int) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.Events, events.New(events.OrderDetailDeleted, id, nil))
	return nil
}

func orderDetailEvent(o *models.OrderDetail) map[string]any {
	return map[string]any{
		"status":      o.OrderStatus.String(),
		"totalAmount": o.TotalAmount.String(),
		"productIDs":  o.ProductIDs(),
	}
}
