package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/queries"
)

// OrderStatusRepo reads the order_status lookup table. Rows are checked
// against the closed OrderStatus set; a row whose id and name disagree
// with the code is reported as an error.
type OrderStatusRepo struct {
	DB *gorm.DB
}

type orderStatusRow struct {
	ID         int
	StatusName string
}

func (row orderStatusRow) status() (models.OrderStatus, error) {
	s, err := models.ParseOrderStatus(row.StatusName)
	if err != nil {
		return 0, err
	}
	if s.ID() != row.ID {
		return 0, fmt.Errorf("%w: %s stored with id %d", models.ErrUnknownOrderStatus, row.StatusName, row.ID)
	}
	return s, nil
}

func (r *OrderStatusRepo) GetByID(ctx context.Context, id int) (models.OrderStatus, error) {
	var rows []orderStatusRow
	if err := r.DB.WithContext(ctx).Raw(queries.GetOrderStatusByID, id).Scan(&rows).Error; err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, ErrNotFound
	}
	return rows[0].status()
}

func (r *OrderStatusRepo) GetAll(ctx context.Context) ([]models.OrderStatus, error) {
	var rows []orderStatusRow
	if err := r.DB.WithContext(ctx).Raw(queries.GetAllOrderStatuses).Scan(&rows).Error; err != nil {
		return nil, err
	}

	statuses := make([]models.OrderStatus, 0, len(rows))
	for _, row := range rows {
		s, err := row.status()
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

// Save inserts the row for s when it is missing. Existing rows are never
// renamed since the names are fixed by the enumeration.
func (r *OrderStatusRepo) Save(ctx context.Context, s models.OrderStatus) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", models.ErrUnknownOrderStatus, int(s))
	}
	var rows []orderStatusRow
	db := r.DB.WithContext(ctx)
	if err := db.Raw(queries.GetOrderStatusByID, s.ID()).Scan(&rows).Error; err != nil {
		return err
	}
	if len(rows) > 0 {
		return nil
	}
	return db.Exec(queries.InsertOrderStatus, s.ID(), s.String()).Error
}

func (r *OrderStatusRepo) Delete(ctx context.Context, id int) error {
	return r.DB.WithContext(ctx).Exec(queries.DeleteOrderStatus, id).Error
}
