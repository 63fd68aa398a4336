package repo

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/restaurant/internal/db/dbtest"
	"github.com/Skotchmaster/restaurant/internal/models"
)

func TestApprovalGetByID(t *testing.T) {
	repos := New(dbtest.OpenSeeded(t))

	a, err := repos.Approvals.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 2, a.OrderDetailID())
	require.Equal(t, models.OrderStatusApproved, *a.OrderDetail.OrderStatus)
	require.True(t, decimal.RequireFromString("10.98").Equal(a.OrderDetail.TotalAmount))
}

func TestApprovalSaveInsertUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repos := New(dbtest.OpenSeeded(t))

	saved, err := repos.Approvals.Save(ctx, &models.OrderApproval{OrderDetail: &models.OrderDetail{ID: 1}})
	require.NoError(t, err)
	require.Positive(t, saved.ID)
	require.Equal(t, 1, saved.OrderDetailID())

	saved.OrderDetail = &models.OrderDetail{ID: 3}
	updated, err := repos.Approvals.Save(ctx, saved)
	require.NoError(t, err)
	require.Equal(t, 3, updated.OrderDetailID())
	require.Equal(t, models.OrderStatusCancelled, *updated.OrderDetail.OrderStatus)

	all, err := repos.Approvals.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.NoError(t, repos.Approvals.Delete(ctx, saved.ID))
	_, err = repos.Approvals.GetByID(ctx, saved.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestApprovalSaveUnknownOrder(t *testing.T) {
	repos := New(dbtest.OpenSeeded(t))

	_, err := repos.Approvals.Save(context.Background(), &models.OrderApproval{OrderDetail: &models.OrderDetail{ID: 77}})
	require.Error(t, err)
}

func TestApprovalUniquePerOrder(t *testing.T) {
	ctx := context.Background()
	repos := New(dbtest.OpenSeeded(t))

	id, err := repos.Approvals.IDByOrderDetail(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 1, id)

	_, err = repos.Approvals.IDByOrderDetail(ctx, 1)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repos.Approvals.Save(ctx, &models.OrderApproval{OrderDetail: &models.OrderDetail{ID: 2}})
	require.Error(t, err)

	all, err := repos.Approvals.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}
