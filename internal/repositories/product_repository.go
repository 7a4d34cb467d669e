package repositories

import (
	"context"

	"shop/internal/models"

	"github.com/shopspring/decimal"
)

// ProductFilter narrows product listings. Size 0 returns every match.
type ProductFilter struct {
	Name     string
	BrandID  uint
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     int
	Size     int
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Find(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindByCode(ctx context.Context, code string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	IsOrdered(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)
}
