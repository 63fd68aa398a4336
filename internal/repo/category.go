package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/queries"
)

type CategoryRepo struct {
	DB *gorm.DB
}

type categoryRow struct {
	CategoryID   int
	CategoryName string
	CategoryType string
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int) (*models.ProductCategory, error) {
	return getCategory(r.DB.WithContext(ctx), id)
}

func getCategory(tx *gorm.DB, id int) (*models.ProductCategory, error) {
	categories, err := scanCategories(tx, queries.GetCategoryByID, id)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNotFound
	}
	return &categories[0], nil
}

func (r *CategoryRepo) GetAll(ctx context.Context) ([]models.ProductCategory, error) {
	return scanCategories(r.DB.WithContext(ctx), queries.GetAllCategories)
}

// scanCategories loads the products of each category with one extra query
// per row.
func scanCategories(tx *gorm.DB, query string, args ...any) ([]models.ProductCategory, error) {
	var rows []categoryRow
	if err := tx.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	categories := make([]models.ProductCategory, 0, len(rows))
	for _, row := range rows {
		products, err := scanProducts(tx, false, queries.GetProductsByCategoryID, row.CategoryID)
		if err != nil {
			return nil, err
		}
		categories = append(categories, models.ProductCategory{
			ID:       row.CategoryID,
			Name:     row.CategoryName,
			Type:     row.CategoryType,
			Products: products,
		})
	}
	return categories, nil
}

func (r *CategoryRepo) Save(ctx context.Context, c *models.ProductCategory) (*models.ProductCategory, error) {
	var saved *models.ProductCategory
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := getCategory(tx, c.ID)
		switch {
		case err == nil:
			if err := tx.Exec(queries.UpdateCategory, c.Name, c.Type, c.ID).Error; err != nil {
				return err
			}
		case errors.Is(err, ErrNotFound):
			id, err := insertReturningID(tx, queries.InsertCategory, c.Name, c.Type)
			if err != nil {
				return err
			}
			c.ID = id
		default:
			return err
		}

		saved, err = getCategory(tx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Delete removes, in one transaction, the order lines that reference the
// category's products, the products, and then the category itself.
func (r *CategoryRepo) Delete(ctx context.Context, id int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return execByID(tx, id,
			queries.DeleteOrderDetailProductsByCategoryID,
			queries.DeleteProductsByCategoryID,
			queries.DeleteCategory,
		)
	})
}
