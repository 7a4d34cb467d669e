package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shop/internal/apperrors"
	"shop/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

func (r *GORMProductRepository) filtered(ctx context.Context, f ProductFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if f.Name != "" {
		q = q.Where("LOWER(product_name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
	}
	if f.BrandID != 0 {
		q = q.Where("brand_id = ?", f.BrandID)
	}
	if f.MinPrice != nil {
		q = q.Where("product_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("product_price <= ?", *f.MaxPrice)
	}
	return q
}

// Find returns the requested page of matching products and the total match count.
func (r *GORMProductRepository) Find(ctx context.Context, f ProductFilter) ([]models.Product, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	q := r.filtered(ctx, f).Preload("Brand").Order("product_id")
	if f.Size > 0 {
		offset, limit := Paginate(f.Page, f.Size)
		q = q.Offset(offset).Limit(limit)
	}
	products := []models.Product{}
	if err := q.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get products: %w", err)
	}
	return products, total, nil
}

func (r *GORMProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	return r.first(ctx, "id", id, "product_id = ?", id)
}

func (r *GORMProductRepository) FindByCode(ctx context.Context, code string) (*models.Product, error) {
	return r.first(ctx, "code", code, "product_code = ?", code)
}

func (r *GORMProductRepository) first(ctx context.Context, field string, value any, query string, args ...any) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("image_id") }).
		Where(query, args...).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product", field, value)
		}
		return nil, fmt.Errorf("failed to get product by %s %v: %w", field, value, err)
	}
	return &product, nil
}

func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).Model(product).
		Select("product_name", "product_description", "product_price", "quantity_stock", "brand_id").
		Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Product", "id", product.ProductID)
	}
	return nil
}

// Delete removes the product together with its images.
func (r *GORMProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return fmt.Errorf("failed to delete images of product %d: %w", id, err)
		}
		res := tx.Delete(&models.Product{}, "product_id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFound("Product", "id", id)
		}
		return nil
	})
}

func (r *GORMProductRepository) IsOrdered(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.OrderItem{}).Where("product_id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check orders of product %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *GORMProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *GORMProductRepository) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Where("quantity_stock <= ?", threshold).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count low stock products: %w", err)
	}
	return count, nil
}
