package transport

import (
	"github.com/Skotchmaster/restaurant/internal/models"
)

func ToProductDTO(p models.Product) ProductDTO {
	dto := ProductDTO{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
		Available: p.Available,
	}
	if p.ProductCategory != nil {
		c := ToProductCategoryDTO(*p.ProductCategory)
		dto.ProductCategory = &c
	}
	return dto
}

func ToProduct(dto ProductDTO) models.Product {
	p := models.Product{
		ID:        dto.ID,
		Name:      dto.Name,
		Price:     dto.Price,
		Quantity:  dto.Quantity,
		Available: dto.Available,
	}
	if dto.ProductCategory != nil {
		c := ToProductCategory(*dto.ProductCategory)
		p.ProductCategory = &c
	}
	return p
}

func ToProductDTOs(products []models.Product) []ProductDTO {
	if products == nil {
		return nil
	}
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, ToProductDTO(p))
	}
	return dtos
}

func ToProducts(dtos []ProductDTO) []models.Product {
	if dtos == nil {
		return nil
	}
	products := make([]models.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, ToProduct(dto))
	}
	return products
}

func ToProductCategoryDTO(c models.ProductCategory) ProductCategoryDTO {
	return ProductCategoryDTO{
		ID:       c.ID,
		Name:     c.Name,
		Type:     c.Type,
		Products: ToProductDTOs(c.Products),
	}
}

func ToProductCategory(dto ProductCategoryDTO) models.ProductCategory {
	return models.ProductCategory{
		ID:       dto.ID,
		Name:     dto.Name,
		Type:     dto.Type,
		Products: ToProducts(dto.Products),
	}
}

func ToOrderStatusDTO(s models.OrderStatus) OrderStatusDTO {
	return OrderStatusDTO{ID: s.ID(), StatusName: s.String()}
}

// ToOrderStatus resolves a status by name, falling back to the id when the
// name is empty.
func ToOrderStatus(dto OrderStatusDTO) (models.OrderStatus, error) {
	if dto.StatusName == "" && dto.ID != 0 {
		return models.OrderStatusByID(dto.ID)
	}
	return models.ParseOrderStatus(dto.StatusName)
}

func ToOrderDetailDTO(o models.OrderDetail) OrderDetailDTO {
	dto := OrderDetailDTO{
		ID:          o.ID,
		Products:    ToProductDTOs(o.Products),
		TotalAmount: o.TotalAmount,
	}
	if dto.Products == nil {
		dto.Products = []ProductDTO{}
	}
	if o.OrderStatus != nil {
		s := ToOrderStatusDTO(*o.OrderStatus)
		dto.OrderStatus = &s
	}
	return dto
}

func ToOrderDetail(dto OrderDetailDTO) (models.OrderDetail, error) {
	o := models.OrderDetail{
		ID:          dto.ID,
		TotalAmount: dto.TotalAmount,
		Products:    ToProducts(dto.Products),
	}
	if dto.OrderStatus != nil {
		s, err := ToOrderStatus(*dto.OrderStatus)
		if err != nil {
			return models.OrderDetail{}, err
		}
		o.OrderStatus = &s
	}
	return o, nil
}

func ToOrderApprovalDTO(a models.OrderApproval) OrderApprovalDTO {
	dto := OrderApprovalDTO{ID: a.ID}
	if a.OrderDetail != nil {
		o := ToOrderDetailDTO(*a.OrderDetail)
		dto.OrderDetail = &o
	}
	return dto
}

func ToOrderApproval(dto OrderApprovalDTO) (models.OrderApproval, error) {
	a := models.OrderApproval{ID: dto.ID}
	if dto.OrderDetail != nil {
		o, err := ToOrderDetail(*dto.OrderDetail)
		if err != nil {
			return models.OrderApproval{}, err
		}
		a.OrderDetail = &o
	}
	return a, nil
}
