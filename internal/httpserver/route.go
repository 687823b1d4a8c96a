package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	CustomerHandler *CustomerHTTP
	AccountHandler  *AccountHTTP
	ProductHandler  *ProductHTTP
	OrderHandler    *OrderHTTP
	DB              Pinger
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := d.DB.Ping(ctx); err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
		}
		return c.NoContent(http.StatusOK)
	})

	customers := e.Group("/customers")
	customers.POST("", d.CustomerHandler.CreateCustomer)
	customers.GET("", d.CustomerHandler.ListCustomers)
	customers.GET("/:id", d.CustomerHandler.GetCustomer)
	customers.PUT("/:id", d.CustomerHandler.UpdateCustomer)
	customers.DELETE("/:id", d.CustomerHandler.DeleteCustomer)

	accounts := e.Group("/customer_accounts")
	accounts.POST("", d.AccountHandler.CreateAccount)
	accounts.GET("/:id", d.AccountHandler.GetAccount)
	accounts.PUT("/:id", d.AccountHandler.UpdateAccount)
	accounts.DELETE("/:id", d.AccountHandler.DeleteAccount)

	products := e.Group("/products")
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("", d.ProductHandler.ListProducts)
	products.GET("/search", d.ProductHandler.SearchProducts)
	products.GET("/stock/:id", d.ProductHandler.GetStock)
	products.PUT("/stock/:id", d.ProductHandler.SetStock)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	orders := e.Group("/orders")
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/track/:id", d.OrderHandler.GetOrder)
	orders.GET("/history/:customer_id", d.OrderHandler.OrderHistory)
	orders.GET("/total/:id", d.OrderHandler.OrderTotal)
	orders.DELETE("/cancel/:id", d.OrderHandler.CancelOrder)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.PUT("/:id", d.OrderHandler.UpdateOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)
}
