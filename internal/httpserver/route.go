package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/db"
	"github.com/Skotchmaster/restaurant/internal/logging"
	"github.com/Skotchmaster/restaurant/internal/service"
)

type Deps struct {
	DB              *gorm.DB
	ProductHandler  *ProductHTTP
	CategoryHandler *CategoryHTTP
	OrderHandler    *OrderDetailHTTP
	ApprovalHandler *ApprovalHTTP
	StatusHandler   *StatusHTTP
}

// NewDeps builds one handler per resource on top of svc.
func NewDeps(gdb *gorm.DB, svc *service.Services) *Deps {
	return &Deps{
		DB:              gdb,
		ProductHandler:  &ProductHTTP{Svc: svc.Products},
		CategoryHandler: &CategoryHTTP{Svc: svc.Categories},
		OrderHandler:    &OrderDetailHTTP{Svc: svc.OrderDetails},
		ApprovalHandler: &ApprovalHTTP{Svc: svc.Approvals},
		StatusHandler:   &StatusHTTP{Svc: svc.Statuses},
	}
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", d.ready)

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PUT("", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	categories := e.Group("/product-categories")
	categories.GET("", d.CategoryHandler.GetCategories)
	categories.GET("/:id", d.CategoryHandler.GetCategory)
	categories.POST("", d.CategoryHandler.CreateCategory)
	categories.PUT("", d.CategoryHandler.UpdateCategory)
	categories.DELETE("/:id", d.CategoryHandler.DeleteCategory)

	orders := e.Group("/order-details")
	orders.GET("", d.OrderHandler.GetOrderDetails)
	orders.GET("/:id", d.OrderHandler.GetOrderDetail)
	orders.POST("", d.OrderHandler.CreateOrderDetail)
	orders.PUT("", d.OrderHandler.UpdateOrderDetail)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrderDetail)

	approvals := e.Group("/order-approvals")
	approvals.GET("", d.ApprovalHandler.GetApprovals)
	approvals.GET("/:id", d.ApprovalHandler.GetApproval)
	approvals.POST("", d.ApprovalHandler.CreateApproval)
	approvals.PUT("", d.ApprovalHandler.UpdateApproval)
	approvals.DELETE("/:id", d.ApprovalHandler.DeleteApproval)

	statuses := e.Group("/order-statuses")
	statuses.GET("", d.StatusHandler.GetStatuses)
	statuses.GET("/:id", d.StatusHandler.GetStatus)
}

func (d *Deps) ready(c echo.Context) error {
	ctx := c.Request().Context()
	if err := db.Ping(ctx, d.DB); err != nil {
		logging.FromContext(ctx).Error("readiness_failed", "status", http.StatusServiceUnavailable, "error", err)
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
