package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/queries"
)

type OrderDetailRepo struct {
	DB *gorm.DB
}

type orderDetailRow struct {
	ID          int
	TotalAmount decimal.Decimal
	StatusID    int
	StatusName  string
}

func (r *OrderDetailRepo) GetByID(ctx context.Context, id int) (*models.OrderDetail, error) {
	return getOrderDetail(r.DB.WithContext(ctx), id)
}

func getOrderDetail(tx *gorm.DB, id int) (*models.OrderDetail, error) {
	details, err := scanOrderDetails(tx, queries.GetOrderDetailByID, id)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrNotFound
	}
	return &details[0], nil
}

func (r *OrderDetailRepo) GetAll(ctx context.Context) ([]models.OrderDetail, error) {
	return scanOrderDetails(r.DB.WithContext(ctx), queries.GetAllOrderDetails)
}

func scanOrderDetails(tx *gorm.DB, query string, args ...any) ([]models.OrderDetail, error) {
	var rows []orderDetailRow
	if err := tx.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	details := make([]models.OrderDetail, 0, len(rows))
	for _, row := range rows {
		status, err := models.ParseOrderStatus(row.StatusName)
		if err != nil {
			return nil, fmt.Errorf("order detail %d: %w", row.ID, err)
		}

		products, err := scanProducts(tx, true, queries.GetProductsByOrderDetailID, row.ID)
		if err != nil {
			return nil, err
		}

		details = append(details, models.OrderDetail{
			ID:          row.ID,
			OrderStatus: &status,
			TotalAmount: row.TotalAmount,
			Products:    products,
		})
	}
	return details, nil
}

// Save writes the order row and replaces its product associations with the
// products carried by o, all in one transaction.
func (r *OrderDetailRepo) Save(ctx context.Context, o *models.OrderDetail) (*models.OrderDetail, error) {
	if o.OrderStatus == nil {
		return nil, fmt.Errorf("order detail %d: %w", o.ID, models.ErrUnknownOrderStatus)
	}
	statusID := o.OrderStatus.ID()

	var saved *models.OrderDetail
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := getOrderDetail(tx, o.ID)
		switch {
		case err == nil:
			if err := tx.Exec(queries.UpdateOrderDetail, statusID, o.TotalAmount, o.ID).Error; err != nil {
				return err
			}
		case errors.Is(err, ErrNotFound):
			id, err := insertReturningID(tx, queries.InsertOrderDetail, statusID, o.TotalAmount)
			if err != nil {
				return err
			}
			o.ID = id
		default:
			return err
		}

		if err := tx.Exec(queries.DeleteOrderDetailProductsByOrderID, o.ID).Error; err != nil {
			return err
		}
		for _, productID := range o.ProductIDs() {
			if err := tx.Exec(queries.InsertOrderDetailProduct, o.ID, productID).Error; err != nil {
				return err
			}
		}

		saved, err = getOrderDetail(tx, o.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Delete removes the approval and the product associations before the order
// row. Any failure rolls the whole sequence back.
func (r *OrderDetailRepo) Delete(ctx context.Context, id int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return execByID(tx, id,
			queries.DeleteApprovalsByOrderID,
			queries.DeleteOrderDetailProductsByOrderID,
			queries.DeleteOrderDetail,
		)
	})
}
