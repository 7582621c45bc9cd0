package router

import (
	"oneMinuteShop/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupDiagnosticRoutes(e *echo.Echo, handler *rest.DiagnosticHandler) {
	e.GET("/", handler.Root)
	e.GET("/test", handler.Test)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func SetupTenantRoutes(e *echo.Echo, handler *rest.TenantHandler) {
	tenants := e.Group("/tenants")

	tenants.POST("", handler.CreateTenant)
	tenants.GET("/by-subdomain/:subdomain", handler.GetTenantBySubdomain)
}

func SetupProductRoutes(e *echo.Echo, handler *rest.ProductHandler) {
	products := e.Group("/products")

	products.POST("", handler.CreateProduct)
	products.GET("", handler.ListProducts)
	products.PUT("/:id", handler.UpdateProduct)
	products.DELETE("/:id", handler.DeleteProduct)
}

func SetOrdersRoutes(e *echo.Echo, ordersHandler *rest.OrdersHandler) {
	orders := e.Group("/orders")
	orders.POST("", ordersHandler.CreateOrder)
	orders.GET("", ordersHandler.ListOrders)
	orders.PATCH("/:id", ordersHandler.UpdateOrder)
}
