package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrCustomerMissing  = errors.New("customer does not exist")
	ErrProductInUse     = errors.New("product is referenced by orders")
	ErrAlreadyCancelled = errors.New("order already cancelled")
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func customerExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Table("customers").Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCustomerMissing
	}
	return nil
}

func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
