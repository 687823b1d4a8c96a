package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
)

func preloadLines(db *gorm.DB) *gorm.DB {
	return db.Order("order_lines.product_id ASC")
}

// CreateOrder inserts the header and the lines whose product exists, all in one
// transaction. Product ids without a row are returned as skipped.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order, lines []models.OrderLine) ([]uint, error) {
	var skipped []uint

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := customerExists(tx, order.CustomerID); err != nil {
			return err
		}

		ids := make([]uint, 0, len(lines))
		for _, l := range lines {
			ids = append(ids, l.ProductID)
		}

		known := map[uint]bool{}
		if len(ids) > 0 {
			var found []uint
			if err := tx.Model(&models.Product{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
				return err
			}
			for _, id := range found {
				known[id] = true
			}
		}

		order.Lines = nil
		if err := tx.Omit("Lines").Create(order).Error; err != nil {
			return err
		}

		kept := make([]models.OrderLine, 0, len(lines))
		for _, l := range lines {
			if !known[l.ProductID] {
				skipped = append(skipped, l.ProductID)
				continue
			}
			l.OrderID = order.ID
			kept = append(kept, l)
		}
		if len(kept) > 0 {
			if err := tx.Create(&kept).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Lines", preloadLines).First(order, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return skipped, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	if err := r.DB.WithContext(ctx).Preload("Lines", preloadLines).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormRepo) UpdateOrderDate(ctx context.Context, id uint, date time.Time) (*models.Order, error) {
	var o models.Order
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := affected(tx.Model(&models.Order{}).Where("id = ?", id).Update("date", date)); err != nil {
			return err
		}
		return tx.Preload("Lines", preloadLines).First(&o, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormRepo) DeleteOrder(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Order{}, id).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return affected(tx.Delete(&models.Order{}, id))
	})
}

func (r *GormRepo) CancelOrder(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o models.Order
		if err := tx.Select("id", "status").First(&o, id).Error; err != nil {
			return err
		}
		if o.Status == models.OrderStatusCancelled {
			return ErrAlreadyCancelled
		}
		return tx.Model(&models.Order{}).Where("id = ?", id).Update("status", models.OrderStatusCancelled).Error
	})
}

func (r *GormRepo) ListOrdersByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.DB.WithContext(ctx).
		Preload("Lines", preloadLines).
		Where("customer_id = ?", customerID).
		Order("date ASC, id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderTotal sums quantity * current product price over the order's lines in a single query.
func (r *GormRepo) OrderTotal(ctx context.Context, id uint) (float64, error) {
	var row struct {
		OrderID uint
		Total   float64
	}

	res := r.DB.WithContext(ctx).
		Table("orders").
		Select("orders.id AS order_id, COALESCE(SUM(order_lines.quantity * products.price), 0) AS total").
		Joins("LEFT JOIN order_lines ON order_lines.order_id = orders.id").
		Joins("LEFT JOIN products ON products.id = order_lines.product_id").
		Where("orders.id = ?", id).
		Group("orders.id").
		Scan(&row)
	if err := affected(res); err != nil {
		return 0, err
	}
	return row.Total, nil
}
