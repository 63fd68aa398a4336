package transport

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/restaurant/internal/models"
)

func TestProductRoundTrip(t *testing.T) {
	p := models.Product{
		ID:              3,
		Name:            "Pasta",
		Price:           decimal.RequireFromString("19.99"),
		Quantity:        10,
		Available:       true,
		ProductCategory: &models.ProductCategory{ID: 1, Name: "Main Courses", Type: "Main"},
	}

	got := ToProduct(ToProductDTO(p))
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, p.Name, got.Name)
	require.True(t, p.Price.Equal(got.Price))
	require.Equal(t, 10, got.Quantity)
	require.True(t, got.Available)
	require.Equal(t, 1, got.CategoryID())
	require.Equal(t, *p.ProductCategory, *got.ProductCategory)
}

func TestProductWithoutCategory(t *testing.T) {
	dto := ToProductDTO(models.Product{ID: 1, Name: "Water"})
	require.Nil(t, dto.ProductCategory)

	body, err := json.Marshal(dto)
	require.NoError(t, err)
	require.NotContains(t, string(body), "productCategory")
}

func TestProductJSON(t *testing.T) {
	dto := ToProductDTO(models.Product{
		ID:              7,
		Name:            "Soup",
		Price:           decimal.RequireFromString("4.50"),
		Quantity:        5,
		Available:       true,
		ProductCategory: &models.ProductCategory{ID: 1},
	})

	body, err := json.Marshal(dto)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"id":7,"name":"Soup","price":4.5,"quantity":5,"available":true,"productCategory":{"id":1}}`,
		string(body))

	var back ProductDTO
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Soup","price":"4.50","productCategory":{"id":1}}`), &back))
	require.True(t, decimal.RequireFromString("4.5").Equal(back.Price))
	require.Equal(t, 1, back.ProductCategory.ID)
}

func TestOrderDetailStatusMapping(t *testing.T) {
	dto := ToOrderDetailDTO(models.OrderDetail{ID: 1, TotalAmount: decimal.NewFromInt(3)})
	require.Nil(t, dto.OrderStatus)

	o, err := ToOrderDetail(OrderDetailDTO{OrderStatus: &OrderStatusDTO{StatusName: "PAID"}})
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPaid, *o.OrderStatus)

	o, err = ToOrderDetail(OrderDetailDTO{OrderStatus: &OrderStatusDTO{ID: 2}})
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusApproved, *o.OrderStatus)

	_, err = ToOrderDetail(OrderDetailDTO{OrderStatus: &OrderStatusDTO{StatusName: "SHIPPED"}})
	require.ErrorIs(t, err, models.ErrUnknownOrderStatus)

	o, err = ToOrderDetail(OrderDetailDTO{})
	require.NoError(t, err)
	require.Nil(t, o.OrderStatus)
}

func TestOrderDetailRoundTrip(t *testing.T) {
	o := models.OrderDetail{
		ID:          4,
		OrderStatus: models.OrderStatusCancelled.Ptr(),
		TotalAmount: decimal.RequireFromString("23.98"),
		Products: []models.Product{
			{ID: 5, Name: "Caesar Salad", Price: decimal.RequireFromString("7.99"), ProductCategory: &models.ProductCategory{ID: 5}},
		},
	}

	got, err := ToOrderDetail(ToOrderDetailDTO(o))
	require.NoError(t, err)
	require.Equal(t, o.ID, got.ID)
	require.Equal(t, *o.OrderStatus, *got.OrderStatus)
	require.True(t, o.TotalAmount.Equal(got.TotalAmount))
	require.Equal(t, []int{5}, got.ProductIDs())
}

func TestOrderApprovalRoundTrip(t *testing.T) {
	a := models.OrderApproval{
		ID:          1,
		OrderDetail: &models.OrderDetail{ID: 2, OrderStatus: models.OrderStatusApproved.Ptr()},
	}

	got, err := ToOrderApproval(ToOrderApprovalDTO(a))
	require.NoError(t, err)
	require.Equal(t, 1, got.ID)
	require.Equal(t, 2, got.OrderDetailID())

	_, err = ToOrderApproval(OrderApprovalDTO{OrderDetail: &OrderDetailDTO{OrderStatus: &OrderStatusDTO{StatusName: "nope"}}})
	require.ErrorIs(t, err, models.ErrUnknownOrderStatus)
}

func TestOrderDetailProductsNeverNull(t *testing.T) {
	body, err := json.Marshal(ToOrderApprovalDTO(models.OrderApproval{
		ID:          1,
		OrderDetail: &models.OrderDetail{ID: 2, OrderStatus: models.OrderStatusApproved.Ptr()},
	}))
	require.NoError(t, err)
	require.Contains(t, string(body), `"products":[]`)

	body, err = json.Marshal(ToOrderDetailDTO(models.OrderDetail{ID: 3, Products: []models.Product{}}))
	require.NoError(t, err)
	require.Contains(t, string(body), `"products":[]`)
}
