package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses() {
		got, err := ParseOrderStatus(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	_, err := ParseOrderStatus("paid")
	require.ErrorIs(t, err, ErrUnknownOrderStatus)

	_, err = ParseOrderStatus("")
	require.ErrorIs(t, err, ErrUnknownOrderStatus)
}

func TestOrderStatusIDsAreStable(t *testing.T) {
	require.Equal(t, 1, OrderStatusAccepted.ID())
	require.Equal(t, 2, OrderStatusApproved.ID())
	require.Equal(t, 3, OrderStatusCancelled.ID())
	require.Equal(t, 4, OrderStatusPaid.ID())

	s, err := OrderStatusByID(3)
	require.NoError(t, err)
	require.Equal(t, OrderStatusCancelled, s)

	_, err = OrderStatusByID(9)
	require.ErrorIs(t, err, ErrUnknownOrderStatus)
	require.Equal(t, "OrderStatus(9)", OrderStatus(9).String())
}

func TestOrderDetailProductIDs(t *testing.T) {
	o := OrderDetail{Products: []Product{{ID: 3}, {ID: 0}, {ID: 1}, {ID: 3}}}
	require.Equal(t, []int{3, 1}, o.ProductIDs())
}
