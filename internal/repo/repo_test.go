package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/db/dbtest"
	"github.com/Skotchmaster/ecommerce_api/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()
	return &GormRepo{DB: dbtest.New(t)}
}

func seedCustomer(t *testing.T, r *GormRepo, email string) *models.Customer {
	t.Helper()
	c := &models.Customer{Name: "Ann", Email: email, Phone: "555-0100"}
	require.NoError(t, r.CreateCustomer(context.Background(), c))
	return c
}

func seedProduct(t *testing.T, r *GormRepo, name string, price float64) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: price}
	require.NoError(t, r.CreateProduct(context.Background(), p))
	return p
}

func TestCustomerCRUD(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	c := seedCustomer(t, r, "ann@example.com")
	require.NotZero(t, c.ID)

	got, err := r.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", got.Email)

	c.Name, c.Email, c.Phone = "Bea", "bea@example.com", ""
	require.NoError(t, r.UpdateCustomer(ctx, c))
	got, err = r.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bea", got.Name)
	assert.Equal(t, "", got.Phone)

	err = r.UpdateCustomer(ctx, &models.Customer{ID: 999, Name: "x", Email: "x@x", Phone: "1"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, r.DeleteCustomer(ctx, c.ID))
	assert.ErrorIs(t, r.DeleteCustomer(ctx, c.ID), gorm.ErrRecordNotFound)

	_, err = r.GetCustomer(ctx, c.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seedCustomer(t, r, "dup@example.com")
	err := r.CreateCustomer(ctx, &models.Customer{Name: "Other", Email: "dup@example.com", Phone: "1"})
	require.Error(t, err)

	customers, err := r.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestDeleteCustomer_Cascades(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	c := seedCustomer(t, r, "cascade@example.com")
	p := seedProduct(t, r, "mug", 3)
	require.NoError(t, r.CreateAccount(ctx, &models.CustomerAccount{Username: "ann", PasswordHash: "h", CustomerID: c.ID}))

	o := &models.Order{CustomerID: c.ID, Date: time.Now().UTC(), Status: models.OrderStatusPlaced}
	_, err := r.CreateOrder(ctx, o, []models.OrderLine{{ProductID: p.ID, Quantity: 2}})
	require.NoError(t, err)

	require.NoError(t, r.DeleteCustomer(ctx, c.ID))

	var accounts, orders, lines int64
	require.NoError(t, r.DB.Model(&models.CustomerAccount{}).Count(&accounts).Error)
	require.NoError(t, r.DB.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, r.DB.Model(&models.OrderLine{}).Count(&lines).Error)
	assert.Zero(t, accounts)
	assert.Zero(t, orders)
	assert.Zero(t, lines)

	_, err = r.GetProduct(ctx, p.ID)
	require.NoError(t, err, "products are not owned by customers")
}

func TestAccount_ForeignKeyAndUpdate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	err := r.CreateAccount(ctx, &models.CustomerAccount{Username: "ghost", PasswordHash: "h", CustomerID: 42})
	assert.ErrorIs(t, err, ErrCustomerMissing)

	c := seedCustomer(t, r, "acc@example.com")
	a := &models.CustomerAccount{Username: "ann", PasswordHash: "h1", CustomerID: c.ID}
	require.NoError(t, r.CreateAccount(ctx, a))

	upd := &models.CustomerAccount{ID: a.ID, Username: "ann2", PasswordHash: "h2"}
	require.NoError(t, r.UpdateAccount(ctx, upd))
	assert.Equal(t, c.ID, upd.CustomerID, "customer_id is kept when not given")
	assert.Equal(t, "h2", upd.PasswordHash)

	err = r.UpdateAccount(ctx, &models.CustomerAccount{ID: a.ID, Username: "ann3", PasswordHash: "h3", CustomerID: 77})
	assert.ErrorIs(t, err, ErrCustomerMissing)

	err = r.UpdateAccount(ctx, &models.CustomerAccount{ID: 500, Username: "x", PasswordHash: "x", CustomerID: 77})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, r.DeleteAccount(ctx, a.ID))
	assert.ErrorIs(t, r.DeleteAccount(ctx, a.ID), gorm.ErrRecordNotFound)
}

func TestProduct_UpdateStockAndDelete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	p := seedProduct(t, r, "lamp", 5)
	require.NoError(t, r.SetStock(ctx, p.ID, 12))

	upd := &models.Product{ID: p.ID, Name: "desk lamp", Price: 9.99}
	require.NoError(t, r.UpdateProduct(ctx, upd))
	assert.Equal(t, 9.99, upd.Price)
	assert.Equal(t, 12, upd.Stock, "update must not touch stock")

	for _, n := range []int{0, 100, -3} {
		require.NoError(t, r.SetStock(ctx, p.ID, n))
		stock, err := r.GetStock(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, n, stock)
	}

	assert.ErrorIs(t, r.SetStock(ctx, 999, 1), gorm.ErrRecordNotFound)
	_, err := r.GetStock(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, r.DeleteProduct(ctx, p.ID))
	assert.ErrorIs(t, r.DeleteProduct(ctx, p.ID), gorm.ErrRecordNotFound)
}

func TestDeleteProduct_ReferencedByOrder(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	c := seedCustomer(t, r, "ref@example.com")
	p := seedProduct(t, r, "chair", 40)
	_, err := r.CreateOrder(ctx, &models.Order{CustomerID: c.ID, Date: time.Now(), Status: models.OrderStatusPlaced},
		[]models.OrderLine{{ProductID: p.ID, Quantity: 1}})
	require.NoError(t, err)

	assert.ErrorIs(t, r.DeleteProduct(ctx, p.ID), ErrProductInUse)
	_, err = r.GetProduct(ctx, p.ID)
	require.NoError(t, err)
}

func TestSearchProducts_Fallback(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seedProduct(t, r, "Blue Mug", 4)
	seedProduct(t, r, "Red mug", 4)
	seedProduct(t, r, "100% cotton shirt", 20)
	seedProduct(t, r, "Teapot", 15)

	got, err := r.SearchProducts(ctx, "MUG")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Blue Mug", got[0].Name)

	got, err = r.SearchProducts(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = r.SearchProducts(ctx, "nothing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOrder_CreateSkipsUnknownProducts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	c := seedCustomer(t, r, "order@example.com")
	a := seedProduct(t, r, "A", 10)

	o := &models.Order{CustomerID: c.ID, Date: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), Status: models.OrderStatusPlaced}
	skipped, err := r.CreateOrder(ctx, o, []models.OrderLine{
		{ProductID: a.ID, Quantity: 2},
		{ProductID: 9999, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{9999}, skipped)
	require.Len(t, o.Lines, 1)
	assert.Equal(t, a.ID, o.Lines[0].ProductID)
	assert.Equal(t, o.ID, o.Lines[0].OrderID)

	_, err = r.CreateOrder(ctx, &models.Order{CustomerID: 404, Date: time.Now(), Status: models.OrderStatusPlaced}, nil)
	assert.ErrorIs(t, err, ErrCustomerMissing)

	var orders int64
	require.NoError(t, r.DB.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 1, orders, "failed order must not leave a header behind")
}

func TestOrder_TotalUsesCurrentPrices(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	c := seedCustomer(t, r, "total@example.com")
	a := seedProduct(t, r, "A", 10)
	b := seedProduct(t, r, "B", 5)

	o := &models.Order{CustomerID: c.ID, Date: time.Now(), Status: models.OrderStatusPlaced}
	_, err := r.CreateOrder(ctx, o, []models.OrderLine{{ProductID: a.ID, Quantity: 2}, {ProductID: b.ID, Quantity: 1}})
	require.NoError(t, err)

	total, err := r.OrderTotal(ctx, o.ID)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, total, 1e-9)

	require.NoError(t, r.UpdateProduct(ctx, &models.Product{ID: b.ID, Name: "B", Price: 7.5}))
	total, err = r.OrderTotal(ctx, o.ID)
	require.NoError(t, err)
	assert.InDelta(t, 27.5, total, 1e-9)

	empty := &models.Order{CustomerID: c.ID, Date: time.Now(), Status: models.OrderStatusPlaced}
	_, err = r.CreateOrder(ctx, empty, nil)
	require.NoError(t, err)
	total, err = r.OrderTotal(ctx, empty.ID)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = r.OrderTotal(ctx, 12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrder_UpdateCancelDeleteHistory(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	c := seedCustomer(t, r, "hist@example.com")
	p := seedProduct(t, r, "P", 1)

	history, err := r.ListOrdersByCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)

	first := &models.Order{CustomerID: c.ID, Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Status: models.OrderStatusPlaced}
	_, err = r.CreateOrder(ctx, first, []models.OrderLine{{ProductID: p.ID, Quantity: 3}})
	require.NoError(t, err)
	second := &models.Order{CustomerID: c.ID, Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Status: models.OrderStatusPlaced}
	_, err = r.CreateOrder(ctx, second, nil)
	require.NoError(t, err)

	history, err = r.ListOrdersByCustomer(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	require.Len(t, history[1].Lines, 1)

	newDate := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	updated, err := r.UpdateOrderDate(ctx, first.ID, newDate)
	require.NoError(t, err)
	assert.True(t, newDate.Equal(updated.Date))
	require.Len(t, updated.Lines, 1)

	_, err = r.UpdateOrderDate(ctx, 999, newDate)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, r.CancelOrder(ctx, first.ID))
	assert.ErrorIs(t, r.CancelOrder(ctx, first.ID), ErrAlreadyCancelled)
	got, err := r.GetOrder(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, got.Status)
	assert.ErrorIs(t, r.CancelOrder(ctx, 999), gorm.ErrRecordNotFound)

	require.NoError(t, r.DeleteOrder(ctx, first.ID))
	err = r.DeleteOrder(ctx, first.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var lines int64
	require.NoError(t, r.DB.Model(&models.OrderLine{}).Where("order_id = ?", first.ID).Count(&lines).Error)
	assert.Zero(t, lines)
}

func TestPing(t *testing.T) {
	r := newTestRepo(t)
	require.NoError(t, r.Ping(context.Background()))
}
