package service

import (
	"context"

	"github.com/Skotchmaster/restaurant/internal/events"
	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/repo"
)

type ProductService struct {
	Repo       *repo.ProductRepo
	Categories *repo.CategoryRepo
	Events     events.Publisher
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetAll(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	saved, err := s.save(ctx, p)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, events.New(events.ProductCreated, saved.ID, productEvent(saved)))
	return saved, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	if p.ID == 0 {
		return nil, invalid("id is required")
	}
	saved, err := s.save(ctx, p)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, events.New(events.ProductUpdated, saved.ID, productEvent(saved)))
	return saved, nil
}

func (s *ProductService) save(ctx context.Context, p *models.Product) (*models.Product, error) {
	if err := s.validate(ctx, p); err != nil {
		return nil, err
	}
	return s.Repo.Save(ctx, p)
}

func (s *ProductService) validate(ctx context.Context, p *models.Product) error {
	if err := requireName("name", p.Name); err != nil {
		return err
	}
	if err := requireNonNegative("price", p.Price); err != nil {
		return err
	}
	if p.Quantity < 0 {
		return invalid("quantity cannot be negative")
	}
	if p.CategoryID() == 0 {
		return invalid("productCategory is required")
	}
	_, err := s.Categories.GetByID(ctx, p.CategoryID())
	return requireExisting("category", p.CategoryID(), err)
}

// DeleteProduct returns repo.ErrNotFound when there is nothing to delete.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.Events, events.New(events.ProductDeleted, id, nil))
	return nil
}

func productEvent(p *models.Product) map[string]any {
	return map[string]any{
		"name":       p.Name,
		"price":      p.Price.String(),
		"quantity":   p.Quantity,
		"available":  p.Available,
		"categoryID": p.CategoryID(),
	}
}
