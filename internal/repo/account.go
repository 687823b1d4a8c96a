package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
)

func (r *GormRepo) CreateAccount(ctx context.Context, a *models.CustomerAccount) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := customerExists(tx, a.CustomerID); err != nil {
			return err
		}
		return tx.Create(a).Error
	})
}

func (r *GormRepo) GetAccount(ctx context.Context, id uint) (*models.CustomerAccount, error) {
	var a models.CustomerAccount
	if err := r.DB.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAccount overwrites username and password hash; customer_id only when non-zero.
func (r *GormRepo) UpdateAccount(ctx context.Context, a *models.CustomerAccount) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.CustomerAccount{}, a.ID).Error; err != nil {
			return err
		}

		values := map[string]any{
			"username":      a.Username,
			"password_hash": a.PasswordHash,
		}
		if a.CustomerID != 0 {
			if err := customerExists(tx, a.CustomerID); err != nil {
				return err
			}
			values["customer_id"] = a.CustomerID
		}

		if err := tx.Model(&models.CustomerAccount{}).Where("id = ?", a.ID).Updates(values).Error; err != nil {
			return err
		}
		return tx.First(a, a.ID).Error
	})
}

func (r *GormRepo) DeleteAccount(ctx context.Context, id uint) error {
	return affected(r.DB.WithContext(ctx).Delete(&models.CustomerAccount{}, id))
}
