package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/internal/logging"
	"github.com/Skotchmaster/ecommerce_api/internal/service"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_order", err)
	}

	order, skipped, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		return fail(l, "create_order", err, "cannot create order")
	}

	if len(skipped) > 0 {
		l.Warn("create_order_skipped_lines", "order_id", order.ID, "product_ids", skipped)
	}
	l.Info("create_order_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, transport.OrderResponse{Order: *order, SkippedProductIDs: skipped})
}

// GetOrder also serves /orders/track/:id.
func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.Svc.GetOrder(ctx, id)
	if err != nil {
		return fail(l, "get_order", err, "cannot get order")
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "update_order", err)
	}

	order, err := h.Svc.UpdateOrder(ctx, id, req)
	if err != nil {
		return fail(l, "update_order", err, "cannot update order")
	}

	l.Info("update_order_success", "order_id", id)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteOrder(ctx, id); err != nil {
		return fail(l, "delete_order", err, "cannot delete order")
	}

	l.Info("delete_order_success", "order_id", id)
	return message(c, "Order deleted successfully")
}

func (h *OrderHTTP) CancelOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.cancel")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.CancelOrder(ctx, id); err != nil {
		return fail(l, "cancel_order", err, "cannot cancel order")
	}

	l.Info("cancel_order_success", "order_id", id)
	return message(c, "Order canceled successfully")
}

func (h *OrderHTTP) OrderHistory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.history")

	customerID, err := parseID(c, "customer_id")
	if err != nil {
		return err
	}

	orders, err := h.Svc.OrderHistory(ctx, customerID)
	if err != nil {
		return fail(l, "order_history", err, "cannot get order history")
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) OrderTotal(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.total")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	total, err := h.Svc.OrderTotal(ctx, id)
	if err != nil {
		return fail(l, "order_total", err, "cannot calculate order total")
	}
	return c.JSON(http.StatusOK, transport.TotalResponse{TotalPrice: total})
}
