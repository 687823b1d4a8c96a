package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
)

func (r *GormRepo) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *GormRepo) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	res := r.DB.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":  c.Name,
		"email": c.Email,
		"phone": c.Phone,
	})
	return affected(res)
}

// DeleteCustomer removes the customer together with its accounts, orders and order lines.
func (r *GormRepo) DeleteCustomer(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Customer{}, id).Error; err != nil {
			return err
		}

		orderIDs := tx.Model(&models.Order{}).Select("id").Where("customer_id = ?", id)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.CustomerAccount{}).Error; err != nil {
			return err
		}
		return affected(tx.Delete(&models.Customer{}, id))
	})
}
