package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/internal/logging"
	"github.com/Skotchmaster/ecommerce_api/internal/service"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
)

type AccountHTTP struct {
	Svc *service.AccountService
}

func (h *AccountHTTP) CreateAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.create")

	var req transport.CustomerAccountRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_account", err)
	}

	account, err := h.Svc.CreateAccount(ctx, req)
	if err != nil {
		return fail(l, "create_account", err, "cannot create customer account")
	}

	l.Info("create_account_success", "account_id", account.ID)
	return c.JSON(http.StatusCreated, account)
}

func (h *AccountHTTP) GetAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.get")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	account, err := h.Svc.GetAccount(ctx, id)
	if err != nil {
		return fail(l, "get_account", err, "cannot get customer account")
	}
	return c.JSON(http.StatusOK, account)
}

func (h *AccountHTTP) UpdateAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.update")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.CustomerAccountRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "update_account", err)
	}

	account, err := h.Svc.UpdateAccount(ctx, id, req)
	if err != nil {
		return fail(l, "update_account", err, "cannot update customer account")
	}

	l.Info("update_account_success", "account_id", id)
	return c.JSON(http.StatusOK, account)
}

func (h *AccountHTTP) DeleteAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteAccount(ctx, id); err != nil {
		return fail(l, "delete_account", err, "cannot delete customer account")
	}

	l.Info("delete_account_success", "account_id", id)
	return message(c, "Customer account deleted successfully")
}
