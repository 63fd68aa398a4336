package service

import (
	"context"

	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/repo"
)

// StatusService exposes the order status lookup table read-only.
type StatusService struct {
	Repo *repo.OrderStatusRepo
}

func (s *StatusService) GetStatus(ctx context.Context, id int) (models.OrderStatus, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *StatusService) GetStatuses(ctx context.Context) ([]models.OrderStatus, error) {
	return s.Repo.GetAll(ctx)
}
