package repositories

import (
	"context"

	"shop/internal/models"
)

// ImageRepository defines the interface for product image data access.
type ImageRepository interface {
	FindAll(ctx context.Context) ([]models.Image, error)
	FindByID(ctx context.Context, id uint) (*models.Image, error)
	FindByProduct(ctx context.Context, productID uint) ([]models.Image, error)
	Create(ctx context.Context, image *models.Image) error
	Update(ctx context.Context, image *models.Image) error
	Delete(ctx context.Context, id uint) error
	DeleteByProduct(ctx context.Context, productID uint) (int64, error)
}
