package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/queries"
)

type ProductRepo struct {
	DB *gorm.DB
}

func (r *ProductRepo) GetByID(ctx context.Context, id int) (*models.Product, error) {
	return getProduct(r.DB.WithContext(ctx), id)
}

func getProduct(tx *gorm.DB, id int) (*models.Product, error) {
	products, err := scanProducts(tx, true, queries.GetProductByID, id)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return &products[0], nil
}

func (r *ProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	return scanProducts(r.DB.WithContext(ctx), true, queries.GetAllProducts)
}

// Save updates the product when a row with its id exists and inserts it
// otherwise, then reloads it so the category is fully populated.
func (r *ProductRepo) Save(ctx context.Context, p *models.Product) (*models.Product, error) {
	var saved *models.Product
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := getProduct(tx, p.ID)
		switch {
		case err == nil:
			if err := tx.Exec(queries.UpdateProduct,
				p.Name, p.Price, p.Quantity, p.Available, p.CategoryID(), p.ID).Error; err != nil {
				return err
			}
		case errors.Is(err, ErrNotFound):
			id, err := insertReturningID(tx, queries.InsertProduct,
				p.Name, p.Price, p.Quantity, p.Available, p.CategoryID())
			if err != nil {
				return err
			}
			p.ID = id
		default:
			return err
		}

		saved, err = getProduct(tx, p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Delete removes the product's order lines first so the foreign keys on
// order_detail_products hold.
func (r *ProductRepo) Delete(ctx context.Context, id int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return execByID(tx, id,
			queries.DeleteOrderDetailProductsByProductID,
			queries.DeleteProduct,
		)
	})
}
