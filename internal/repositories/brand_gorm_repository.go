package repositories

import (
	"context"
	"errors"
	"fmt"

	"shop/internal/apperrors"
	"shop/internal/models"

	"gorm.io/gorm"
)

// GORMBrandRepository is a GORM implementation of BrandRepository.
type GORMBrandRepository struct {
	db *gorm.DB
}

func NewGORMBrandRepository(db *gorm.DB) *GORMBrandRepository {
	return &GORMBrandRepository{db: db}
}

func (r *GORMBrandRepository) FindAll(ctx context.Context) ([]models.Brand, error) {
	brands := []models.Brand{}
	if err := r.db.WithContext(ctx).Order("brand_id").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to get all brands: %w", err)
	}
	return brands, nil
}

func (r *GORMBrandRepository) FindByID(ctx context.Context, id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.WithContext(ctx).First(&brand, "brand_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Brand", "id", id)
		}
		return nil, fmt.Errorf("failed to get brand by ID %d: %w", id, err)
	}
	return &brand, nil
}

func (r *GORMBrandRepository) FindByCode(ctx context.Context, code string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.WithContext(ctx).First(&brand, "brand_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Brand", "code", code)
		}
		return nil, fmt.Errorf("failed to get brand by code %s: %w", code, err)
	}
	return &brand, nil
}

func (r *GORMBrandRepository) Create(ctx context.Context, brand *models.Brand) error {
	if err := r.db.WithContext(ctx).Create(brand).Error; err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

func (r *GORMBrandRepository) Update(ctx context.Context, brand *models.Brand) error {
	res := r.db.WithContext(ctx).Model(brand).
		Select("brand_name", "brand_description").
		Updates(brand)
	if res.Error != nil {
		return fmt.Errorf("failed to update brand: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Brand", "id", brand.BrandID)
	}
	return nil
}

func (r *GORMBrandRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Brand{}, "brand_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Brand", "id", id)
	}
	return nil
}

func (r *GORMBrandRepository) CountProducts(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Where("brand_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products of brand %d: %w", id, err)
	}
	return count, nil
}

func (r *GORMBrandRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Brand{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count brands: %w", err)
	}
	return count, nil
}
