package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/internal/logging"
	"github.com/Skotchmaster/ecommerce_api/internal/service"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_product", err)
	}

	product, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		return fail(l, "create_product", err, "cannot create product")
	}

	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return fail(l, "get_product", err, "cannot get product")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	products, err := h.Svc.ListProducts(ctx)
	if err != nil {
		return fail(l, "list_products", err, "cannot list products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	products, err := h.Svc.Search(ctx, c.QueryParam("q"))
	if err != nil {
		return fail(l, "search_products", err, "cannot search products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "update_product", err)
	}

	product, err := h.Svc.UpdateProduct(ctx, id, req)
	if err != nil {
		return fail(l, "update_product", err, "cannot update product")
	}

	l.Info("update_product_success", "product_id", id)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		return fail(l, "delete_product", err, "cannot delete product")
	}

	l.Info("delete_product_success", "product_id", id)
	return message(c, "Product deleted successfully")
}

func (h *ProductHTTP) GetStock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_stock")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	stock, err := h.Svc.GetStock(ctx, id)
	if err != nil {
		return fail(l, "get_stock", err, "cannot get stock")
	}
	return c.JSON(http.StatusOK, transport.StockResponse{Stock: stock})
}

func (h *ProductHTTP) SetStock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.set_stock")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.StockRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "set_stock", err)
	}

	if err := h.Svc.SetStock(ctx, id, req); err != nil {
		return fail(l, "set_stock", err, "cannot update stock")
	}

	l.Info("set_stock_success", "product_id", id, "stock", *req.Stock)
	return message(c, "Stock updated successfully")
}
