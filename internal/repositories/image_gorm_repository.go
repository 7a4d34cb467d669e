package repositories

import (
	"context"
	"errors"
	"fmt"

	"shop/internal/apperrors"
	"shop/internal/models"

	"gorm.io/gorm"
)

// GORMImageRepository is a GORM implementation of ImageRepository.
type GORMImageRepository struct {
	db *gorm.DB
}

func NewGORMImageRepository(db *gorm.DB) *GORMImageRepository {
	return &GORMImageRepository{db: db}
}

func (r *GORMImageRepository) FindAll(ctx context.Context) ([]models.Image, error) {
	images := []models.Image{}
	if err := r.db.WithContext(ctx).Order("image_id").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to get all images: %w", err)
	}
	return images, nil
}

func (r *GORMImageRepository) FindByID(ctx context.Context, id uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.WithContext(ctx).First(&image, "image_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Image", "id", id)
		}
		return nil, fmt.Errorf("failed to get image by ID %d: %w", id, err)
	}
	return &image, nil
}

func (r *GORMImageRepository) FindByProduct(ctx context.Context, productID uint) ([]models.Image, error) {
	images := []models.Image{}
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("image_id").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to get images of product %d: %w", productID, err)
	}
	return images, nil
}

func (r *GORMImageRepository) Create(ctx context.Context, image *models.Image) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

func (r *GORMImageRepository) Update(ctx context.Context, image *models.Image) error {
	res := r.db.WithContext(ctx).Model(image).
		Select("image_name", "image_url", "product_id").
		Updates(image)
	if res.Error != nil {
		return fmt.Errorf("failed to update image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Image", "id", image.ImageID)
	}
	return nil
}

func (r *GORMImageRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Image{}, "image_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Image", "id", id)
	}
	return nil
}

// DeleteByProduct removes every image of a product and reports how many were deleted.
func (r *GORMImageRepository) DeleteByProduct(ctx context.Context, productID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.Image{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete images of product %d: %w", productID, res.Error)
	}
	return res.RowsAffected, nil
}
