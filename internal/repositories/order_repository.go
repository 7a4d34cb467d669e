package repositories

import (
	"context"

	"shop/internal/models"

	"github.com/shopspring/decimal"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindByCode(ctx context.Context, code string) (*models.Order, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Order, error)
	FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	// Create stores the order and its items and takes the ordered quantities
	// out of stock, atomically.
	Create(ctx context.Context, order *models.Order) error
	// UpdateStatus writes the status and payment fields only while the stored
	// status is still from.
	UpdateStatus(ctx context.Context, order *models.Order, from models.OrderStatus) error
	// Cancel marks the order cancelled and puts its quantities back in stock.
	Cancel(ctx context.Context, order *models.Order) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[models.OrderStatus]int64, error)
	Revenue(ctx context.Context, status models.OrderStatus) (decimal.Decimal, error)
}
