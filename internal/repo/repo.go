package repo

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/models"
)

// ErrNotFound is returned by lookups that matched no row.
var ErrNotFound = errors.New("record not found")

type Repos struct {
	Products      *ProductRepo
	Categories    *CategoryRepo
	OrderDetails  *OrderDetailRepo
	OrderStatuses *OrderStatusRepo
	Approvals     *ApprovalRepo
}

// New builds every repository on the same connection pool.
func New(db *gorm.DB) *Repos {
	return &Repos{
		Products:      &ProductRepo{DB: db},
		Categories:    &CategoryRepo{DB: db},
		OrderDetails:  &OrderDetailRepo{DB: db},
		OrderStatuses: &OrderStatusRepo{DB: db},
		Approvals:     &ApprovalRepo{DB: db},
	}
}

func insertReturningID(tx *gorm.DB, query string, args ...any) (int, error) {
	var id int
	res := tx.Raw(query, args...).Scan(&id)
	if res.Error != nil {
		return 0, res.Error
	}
	if id == 0 {
		return 0, errors.New("insert returned no id")
	}
	return id, nil
}

// execByID runs each statement with id as its only parameter, in order.
func execByID(tx *gorm.DB, id int, statements ...string) error {
	for _, q := range statements {
		if err := tx.Exec(q, id).Error; err != nil {
			return err
		}
	}
	return nil
}

// productRow is the flat shape of every product query. Category columns
// are zero when the query does not join product_categories.
type productRow struct {
	ID           int
	Name         string
	Price        decimal.Decimal
	Quantity     int
	Available    bool
	CategoryID   int
	CategoryName string
	CategoryType string
}

func (r productRow) product() models.Product {
	return models.Product{
		ID:        r.ID,
		Name:      r.Name,
		Price:     r.Price,
		Quantity:  r.Quantity,
		Available: r.Available,
	}
}

func (r productRow) productWithCategory() models.Product {
	p := r.product()
	p.ProductCategory = &models.ProductCategory{
		ID:   r.CategoryID,
		Name: r.CategoryName,
		Type: r.CategoryType,
	}
	return p
}

func scanProducts(tx *gorm.DB, withCategory bool, query string, args ...any) ([]models.Product, error) {
	var rows []productRow
	if err := tx.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		if withCategory {
			products = append(products, row.productWithCategory())
		} else {
			products = append(products, row.product())
		}
	}
	return products, nil
}
