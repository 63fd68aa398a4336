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

type ApprovalRepo struct {
	DB *gorm.DB
}

type approvalRow struct {
	ID            int
	OrderDetailID int
	TotalAmount   decimal.Decimal
	StatusID      int
	StatusName    string
}

func (r *ApprovalRepo) GetByID(ctx context.Context, id int) (*models.OrderApproval, error) {
	return getApproval(r.DB.WithContext(ctx), id)
}

func getApproval(tx *gorm.DB, id int) (*models.OrderApproval, error) {
	approvals, err := scanApprovals(tx, queries.GetApprovalByID, id)
	if err != nil {
		return nil, err
	}
	if len(approvals) == 0 {
		return nil, ErrNotFound
	}
	return &approvals[0], nil
}

func (r *ApprovalRepo) GetAll(ctx context.Context) ([]models.OrderApproval, error) {
	return scanApprovals(r.DB.WithContext(ctx), queries.GetAllApprovals)
}

// The approved order is returned without its products.
func scanApprovals(tx *gorm.DB, query string, args ...any) ([]models.OrderApproval, error) {
	var rows []approvalRow
	if err := tx.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	approvals := make([]models.OrderApproval, 0, len(rows))
	for _, row := range rows {
		status, err := models.ParseOrderStatus(row.StatusName)
		if err != nil {
			return nil, fmt.Errorf("approval %d: %w", row.ID, err)
		}
		approvals = append(approvals, models.OrderApproval{
			ID: row.ID,
			OrderDetail: &models.OrderDetail{
				ID:          row.OrderDetailID,
				OrderStatus: &status,
				TotalAmount: row.TotalAmount,
			},
		})
	}
	return approvals, nil
}

// IDByOrderDetail returns the id of the approval recorded for an order.
func (r *ApprovalRepo) IDByOrderDetail(ctx context.Context, orderDetailID int) (int, error) {
	var ids []int
	if err := r.DB.WithContext(ctx).Raw(queries.GetApprovalIDByOrderDetailID, orderDetailID).Scan(&ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, ErrNotFound
	}
	return ids[0], nil
}

func (r *ApprovalRepo) Save(ctx context.Context, a *models.OrderApproval) (*models.OrderApproval, error) {
	var saved *models.OrderApproval
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := getApproval(tx, a.ID)
		switch {
		case err == nil:
			if err := tx.Exec(queries.UpdateApproval, a.OrderDetailID(), a.ID).Error; err != nil {
				return err
			}
		case errors.Is(err, ErrNotFound):
			id, err := insertReturningID(tx, queries.InsertApproval, a.OrderDetailID())
			if err != nil {
				return err
			}
			a.ID = id
		default:
			return err
		}

		saved, err = getApproval(tx, a.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *ApprovalRepo) Delete(ctx context.Context, id int) error {
	return r.DB.WithContext(ctx).Exec(queries.DeleteApproval, id).Error
}
