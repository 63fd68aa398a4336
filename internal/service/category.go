package service

import (
	"context"

	"github.com/Skotchmaster/restaurant/internal/events"
	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/repo"
)

type CategoryService struct {
	Repo   *repo.CategoryRepo
	Events events.Publisher
}

func (s *CategoryService) GetCategory(ctx context.Context, id int) (*models.ProductCategory, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]models.ProductCategory, error) {
	return s.Repo.GetAll(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, c *models.ProductCategory) (*models.ProductCategory, error) {
	if err := requireName("name", c.Name); err != nil {
		return nil, err
	}
	saved, err := s.Repo.Save(ctx, c)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, events.New(events.CategoryCreated, saved.ID, categoryEvent(saved)))
	return saved, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, c *models.ProductCategory) (*models.ProductCategory, error) {
	if c.ID == 0 {
		return nil, invalid("id is required")
	}
	if err := requireName("name", c.Name); err != nil {
		return nil, err
	}
	saved, err := s.Repo.Save(ctx, c)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, events.New(events.CategoryUpdated, saved.ID, categoryEvent(saved)))
	return saved, nil
}

// DeleteCategory removes the category together with its products.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.Events, events.New(events.CategoryDeleted, id, nil))
	return nil
}

func categoryEvent(c *models.ProductCategory) map[string]any {
	return map[string]any{"name": c.Name, "type": c.Type}
}
