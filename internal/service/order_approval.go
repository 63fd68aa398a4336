package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/restaurant/internal/events"
	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/repo"
)

type ApprovalService struct {
	Repo   *repo.ApprovalRepo
	Orders *repo.OrderDetailRepo
	Events events.Publisher
}

func (s *ApprovalService) GetApproval(ctx context.Context, id int) (*models.OrderApproval, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ApprovalService) GetApprovals(ctx context.Context) ([]models.OrderApproval, error) {
	return s.Repo.GetAll(ctx)
}

func (s *ApprovalService) CreateApproval(ctx context.Context, a *models.OrderApproval) (*models.OrderApproval, error) {
	saved, err := s.save(ctx, a)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, events.New(events.OrderApprovalCreated, saved.ID, approvalEvent(saved)))
	return saved, nil
}

func (s *ApprovalService) UpdateApproval(ctx context.Context, a *models.OrderApproval) (*models.OrderApproval, error) {
	if a.ID == 0 {
		return nil, invalid("id is required")
	}
	saved, err := s.save(ctx, a)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, events.New(events.OrderApprovalUpdated, saved.ID, approvalEvent(saved)))
	return saved, nil
}

func (s *ApprovalService) save(ctx context.Context, a *models.OrderApproval) (*models.OrderApproval, error) {
	if a.OrderDetailID() == 0 {
		return nil, invalid("orderDetail is required")
	}
	_, err := s.Orders.GetByID(ctx, a.OrderDetailID())
	if err := requireExisting("order detail", a.OrderDetailID(), err); err != nil {
		return nil, err
	}

	approvalID, err := s.Repo.IDByOrderDetail(ctx, a.OrderDetailID())
	switch {
	case err == nil && approvalID != a.ID:
		return nil, invalid("order detail %d already approved", a.OrderDetailID())
	case err != nil && !errors.Is(err, repo.ErrNotFound):
		return nil, err
	}
	return s.Repo.Save(ctx, a)
}

func (s *ApprovalService) DeleteApproval(ctx context.Context, id int) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.Events, events.New(events.OrderApprovalDeleted, id, nil))
	return nil
}

func approvalEvent(a *models.OrderApproval) map[string]any {
	return map[string]any{"orderDetailID": a.OrderDetailID()}
}
