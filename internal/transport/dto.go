package transport

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type ProductDTO struct {
	ID              int                 `json:"id"`
	Name            string              `json:"name,omitempty"`
	Price           decimal.Decimal     `json:"price"`
	Quantity        int                 `json:"quantity"`
	Available       bool                `json:"available"`
	ProductCategory *ProductCategoryDTO `json:"productCategory,omitempty"`
}

type ProductCategoryDTO struct {
	ID       int          `json:"id"`
	Name     string       `json:"name,omitempty"`
	Type     string       `json:"type,omitempty"`
	Products []ProductDTO `json:"products,omitempty"`
}

type OrderStatusDTO struct {
	ID         int    `json:"id,omitempty"`
	StatusName string `json:"statusName"`
}

type OrderDetailDTO struct {
	ID          int             `json:"id"`
	OrderStatus *OrderStatusDTO `json:"orderStatus,omitempty"`
	Products    []ProductDTO    `json:"products"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type OrderApprovalDTO struct {
	ID          int             `json:"id"`
	OrderDetail *OrderDetailDTO `json:"orderDetail,omitempty"`
}
