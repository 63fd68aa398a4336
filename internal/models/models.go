package models

import "github.com/shopspring/decimal"

type Product struct {
	ID              int
	Name            string
	Price           decimal.Decimal
	Quantity        int
	Available       bool
	ProductCategory *ProductCategory
}

// CategoryID returns the id of the owning category, 0 when none is set.
func (p *Product) CategoryID() int {
	if p.ProductCategory == nil {
		return 0
	}
	return p.ProductCategory.ID
}

type ProductCategory struct {
	ID       int
	Name     string
	Type     string
	Products []Product
}

type OrderDetail struct {
	ID          int
	OrderStatus *OrderStatus
	TotalAmount decimal.Decimal
	Products    []Product
}

// ProductIDs returns the distinct non-zero product ids of the order in
// the order they appear.
func (o *OrderDetail) ProductIDs() []int {
	seen := make(map[int]struct{}, len(o.Products))
	ids := make([]int, 0, len(o.Products))
	for _, p := range o.Products {
		if p.ID == 0 {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		ids = append(ids, p.ID)
	}
	return ids
}

type OrderApproval struct {
	ID          int
	OrderDetail *OrderDetail
}

func (a *OrderApproval) OrderDetailID() int {
	if a.OrderDetail == nil {
		return 0
	}
	return a.OrderDetail.ID
}
