package repo

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/restaurant/internal/db/dbtest"
	"github.com/Skotchmaster/restaurant/internal/models"
)

func TestOrderDetailGetByID(t *testing.T) {
	repos := New(dbtest.OpenSeeded(t))

	o, err := repos.OrderDetails.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusAccepted, *o.OrderStatus)
	require.True(t, decimal.RequireFromString("25.97").Equal(o.TotalAmount))
	require.Len(t, o.Products, 3)
	require.Equal(t, []int{1, 2, 3}, o.ProductIDs())
	for _, p := range o.Products {
		require.NotNil(t, p.ProductCategory)
		require.NotEmpty(t, p.ProductCategory.Name)
	}
}

func TestOrderDetailGetAll(t *testing.T) {
	repos := New(dbtest.OpenSeeded(t))

	all, err := repos.OrderDetails.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, models.OrderStatusApproved, *all[1].OrderStatus)
	require.Equal(t, models.OrderStatusCancelled, *all[2].OrderStatus)
}

func TestOrderDetailSaveInsertWritesProducts(t *testing.T) {
	ctx := context.Background()
	repos := New(dbtest.OpenSeeded(t))

	o := &models.OrderDetail{
		OrderStatus: models.OrderStatusPaid.Ptr(),
		TotalAmount: decimal.RequireFromString("8.98"),
		Products:    []models.Product{{ID: 4}, {ID: 1}, {ID: 4}},
	}
	saved, err := repos.OrderDetails.Save(ctx, o)
	require.NoError(t, err)
	require.Positive(t, saved.ID)
	require.Equal(t, models.OrderStatusPaid, *saved.OrderStatus)
	require.Equal(t, []int{1, 4}, saved.ProductIDs())
}

func TestOrderDetailSaveUpdateReplacesProducts(t *testing.T) {
	ctx := context.Background()
	repos := New(dbtest.OpenSeeded(t))

	saved, err := repos.OrderDetails.Save(ctx, &models.OrderDetail{
		ID:          1,
		OrderStatus: models.OrderStatusPaid.Ptr(),
		TotalAmount: decimal.RequireFromString("30.00"),
		Products:    []models.Product{{ID: 5}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, saved.ID)

	got, err := repos.OrderDetails.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPaid, *got.OrderStatus)
	require.True(t, decimal.NewFromInt(30).Equal(got.TotalAmount))
	require.Equal(t, []int{5}, got.ProductIDs())

	_, err = repos.OrderDetails.Save(ctx, &models.OrderDetail{
		ID:          1,
		OrderStatus: models.OrderStatusPaid.Ptr(),
		TotalAmount: decimal.NewFromInt(0),
	})
	require.NoError(t, err)
	got, err = repos.OrderDetails.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, got.Products)
}

func TestOrderDetailSaveWithoutStatus(t *testing.T) {
	repos := New(dbtest.OpenSeeded(t))

	_, err := repos.OrderDetails.Save(context.Background(), &models.OrderDetail{TotalAmount: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, models.ErrUnknownOrderStatus)
}

func TestOrderDetailSaveUnknownProductRollsBack(t *testing.T) {
	ctx := context.Background()
	repos := New(dbtest.OpenSeeded(t))

	_, err := repos.OrderDetails.Save(ctx, &models.OrderDetail{
		OrderStatus: models.OrderStatusAccepted.Ptr(),
		TotalAmount: decimal.NewFromInt(1),
		Products:    []models.Product{{ID: 999}},
	})
	require.Error(t, err)

	all, err := repos.OrderDetails.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestOrderDetailDeleteCascades(t *testing.T) {
	ctx := context.Background()
	repos := New(dbtest.OpenSeeded(t))

	require.NoError(t, repos.OrderDetails.Delete(ctx, 2))

	_, err := repos.OrderDetails.GetByID(ctx, 2)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = repos.Approvals.GetByID(ctx, 1)
	require.ErrorIs(t, err, ErrNotFound)

	// The product survives, only its order line is gone.
	_, err = repos.Products.GetByID(ctx, 4)
	require.NoError(t, err)
}
