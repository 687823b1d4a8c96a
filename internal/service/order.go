package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/ecommerce_api/internal/events"
	"github.com/Skotchmaster/ecommerce_api/internal/models"
	"github.com/Skotchmaster/ecommerce_api/internal/repo"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
)

type OrderService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func orderErr(err error) error {
	return storeErr(err, "Order")
}

// orderLines validates the requested lines and merges repeated products by summing quantities.
func orderLines(req []transport.OrderLineRequest) ([]models.OrderLine, error) {
	quantities := map[uint]int{}
	for i, l := range req {
		if l.ProductID == nil || l.Quantity == nil {
			return nil, fail(ErrValidation, "products[%d]: product_id and quantity are required", i)
		}
		if *l.Quantity <= 0 {
			return nil, fail(ErrValidation, "products[%d]: quantity must be > 0", i)
		}
		quantities[*l.ProductID] += *l.Quantity
	}

	ids := lo.Uniq(lo.Map(req, func(l transport.OrderLineRequest, _ int) uint { return *l.ProductID }))
	return lo.Map(ids, func(id uint, _ int) models.OrderLine {
		return models.OrderLine{ProductID: id, Quantity: quantities[id]}
	}), nil
}

// CreateOrder places an order. Lines naming unknown products are left out of the
// order and reported back as skipped instead of failing the request.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, []uint, error) {
	if err := requireFields(
		field{"customer_id", req.CustomerID != nil},
		field{"date", req.Date != nil},
		field{"products", req.Products != nil},
	); err != nil {
		return nil, nil, err
	}

	lines, err := orderLines(req.Products)
	if err != nil {
		return nil, nil, err
	}

	order := &models.Order{
		CustomerID: *req.CustomerID,
		Date:       req.Date.Time,
		Status:     models.OrderStatusPlaced,
	}
	skipped, err := s.Repo.CreateOrder(ctx, order, lines)
	if err != nil {
		return nil, nil, orderErr(err)
	}

	publish(ctx, s.Events, events.New(events.OrderPlaced, order.ID, map[string]any{
		"customer_id":         order.CustomerID,
		"lines":               order.Lines,
		"skipped_product_ids": skipped,
	}))
	return order, skipped, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	o, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, orderErr(err)
	}
	return o, nil
}

// UpdateOrder overwrites the order date; lines cannot be changed after placement.
func (s *OrderService) UpdateOrder(ctx context.Context, id uint, req transport.UpdateOrderRequest) (*models.Order, error) {
	if err := requireFields(field{"date", req.Date != nil}); err != nil {
		return nil, err
	}

	o, err := s.Repo.UpdateOrderDate(ctx, id, req.Date.Time)
	if err != nil {
		return nil, orderErr(err)
	}
	publish(ctx, s.Events, events.New(events.OrderUpdated, o.ID, map[string]any{"date": o.Date}))
	return o, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteOrder(ctx, id); err != nil {
		return orderErr(err)
	}
	publish(ctx, s.Events, events.New(events.OrderDeleted, id, nil))
	return nil
}

// CancelOrder marks the order cancelled; the row and its lines are kept.
func (s *OrderService) CancelOrder(ctx context.Context, id uint) error {
	if err := s.Repo.CancelOrder(ctx, id); err != nil {
		return orderErr(err)
	}
	publish(ctx, s.Events, events.New(events.OrderCancelled, id, nil))
	return nil
}

func (s *OrderService) OrderHistory(ctx context.Context, customerID uint) ([]models.Order, error) {
	return s.Repo.ListOrdersByCustomer(ctx, customerID)
}

// OrderTotal prices the order with the products' current prices, rounded to cents.
func (s *OrderService) OrderTotal(ctx context.Context, id uint) (float64, error) {
	total, err := s.Repo.OrderTotal(ctx, id)
	if err != nil {
		return 0, orderErr(err)
	}
	return decimal.NewFromFloat(total).Round(2).InexactFloat64(), nil
}
