package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/internal/logging"
	"github.com/Skotchmaster/ecommerce_api/internal/service"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
)

type CustomerHTTP struct {
	Svc *service.CustomerService
}

func (h *CustomerHTTP) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.create")

	var req transport.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_customer", err)
	}

	customer, err := h.Svc.CreateCustomer(ctx, req)
	if err != nil {
		return fail(l, "create_customer", err, "cannot create customer")
	}

	l.Info("create_customer_success", "customer_id", customer.ID)
	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHTTP) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	customer, err := h.Svc.GetCustomer(ctx, id)
	if err != nil {
		return fail(l, "get_customer", err, "cannot get customer")
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHTTP) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.list")

	customers, err := h.Svc.ListCustomers(ctx)
	if err != nil {
		return fail(l, "list_customers", err, "cannot list customers")
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHTTP) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.update")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "update_customer", err)
	}

	customer, err := h.Svc.UpdateCustomer(ctx, id, req)
	if err != nil {
		return fail(l, "update_customer", err, "cannot update customer")
	}

	l.Info("update_customer_success", "customer_id", id)
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHTTP) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteCustomer(ctx, id); err != nil {
		return fail(l, "delete_customer", err, "cannot delete customer")
	}

	l.Info("delete_customer_success", "customer_id", id)
	return message(c, "Customer deleted successfully")
}
