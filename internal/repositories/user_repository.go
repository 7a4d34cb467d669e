package repositories

import (
	"context"

	"shop/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByAccount(ctx context.Context, account string) (*models.User, error)
	ExistsByAccount(ctx context.Context, account string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	CountOrders(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}
