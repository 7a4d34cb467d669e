package repositories

import (
	"context"

	"shop/internal/models"
)

// BrandRepository defines the interface for brand data access.
type BrandRepository interface {
	FindAll(ctx context.Context) ([]models.Brand, error)
	FindByID(ctx context.Context, id uint) (*models.Brand, error)
	FindByCode(ctx context.Context, code string) (*models.Brand, error)
	Create(ctx context.Context, brand *models.Brand) error
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id uint) error
	CountProducts(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}
