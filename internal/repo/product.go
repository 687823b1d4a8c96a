package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
)

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProduct overwrites name and price; stock is changed only through SetStock.
func (r *GormRepo) UpdateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).Where("id = ?", p.ID).Updates(map[string]any{
			"name":  p.Name,
			"price": p.Price,
		})
		if err := affected(res); err != nil {
			return err
		}
		return tx.First(p, p.ID).Error
	})
}

// DeleteProduct refuses to remove a product that order lines still point at.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Product{}, id).Error; err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&models.OrderLine{}).Where("product_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrProductInUse
		}

		return affected(tx.Delete(&models.Product{}, id))
	})
}

func (r *GormRepo) GetStock(ctx context.Context, id uint) (int, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).Select("id", "stock").First(&p, id).Error; err != nil {
		return 0, err
	}
	return p.Stock, nil
}

func (r *GormRepo) SetStock(ctx context.Context, id uint, stock int) error {
	return affected(r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Update("stock", stock))
}

// SearchProducts is the case-insensitive name match used when no search index is configured.
func (r *GormRepo) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	products := []models.Product{}
	if err := r.DB.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\'", pattern).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
