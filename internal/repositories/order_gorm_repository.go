package repositories

import (
	"context"
	"errors"
	"fmt"

	"shop/internal/apperrors"
	"shop/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

func (r *GORMOrderRepository) detailed(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_item_id") }).
		Preload("Items.Product")
}

func (r *GORMOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.detailed(ctx).Order("order_id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

func (r *GORMOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.detailed(ctx).First(&order, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Order", "id", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}
	return &order, nil
}

func (r *GORMOrderRepository) FindByCode(ctx context.Context, code string) (*models.Order, error) {
	var order models.Order
	if err := r.detailed(ctx).First(&order, "order_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Order", "code", code)
		}
		return nil, fmt.Errorf("failed to get order by code %s: %w", code, err)
	}
	return &order, nil
}

func (r *GORMOrderRepository) FindByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.detailed(ctx).Where("user_id = ?", userID).Order("order_id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders of user %d: %w", userID, err)
	}
	return orders, nil
}

func (r *GORMOrderRepository) FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.detailed(ctx).Where("order_status = ?", status).Order("order_id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders with status %s: %w", status, err)
	}
	return orders, nil
}

func (r *GORMOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			res := tx.Model(&models.Product{}).
				Where("product_id = ? AND quantity_stock >= ?", item.ProductID, item.ItemQuantity).
				UpdateColumn("quantity_stock", gorm.Expr("quantity_stock - ?", item.ItemQuantity))
			if res.Error != nil {
				return fmt.Errorf("failed to reserve stock for product %d: %w", item.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				return apperrors.BadRequest("Insufficient stock for product id: %d", item.ProductID)
			}
		}

		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.OrderID
		}
		if len(order.Items) > 0 {
			if err := tx.Omit(clause.Associations).Create(&order.Items).Error; err != nil {
				return fmt.Errorf("failed to create order items: %w", err)
			}
		}
		return nil
	})
}

func (r *GORMOrderRepository) UpdateStatus(ctx context.Context, order *models.Order, from models.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(order).
		Where("order_status = ?", from).
		Select("order_status", "payment_date", "payment_method").
		Updates(order)
	if res.Error != nil {
		return fmt.Errorf("failed to update order %d: %w", order.OrderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.BadRequest("Order %d is no longer %s, reload it and retry", order.OrderID, from)
	}
	return nil
}

func (r *GORMOrderRepository) Cancel(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			err := tx.Model(&models.Product{}).
				Where("product_id = ?", item.ProductID).
				UpdateColumn("quantity_stock", gorm.Expr("quantity_stock + ?", item.ItemQuantity)).Error
			if err != nil {
				return fmt.Errorf("failed to restock product %d: %w", item.ProductID, err)
			}
		}
		res := tx.Model(&models.Order{}).
			Where("order_id = ? AND order_status IN ?", order.OrderID, []models.OrderStatus{models.OrderStatusNew, models.OrderStatusProcessing}).
			Update("order_status", models.OrderStatusCancelled)
		if res.Error != nil {
			return fmt.Errorf("failed to cancel order %d: %w", order.OrderID, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.BadRequest("Order %d can no longer be cancelled", order.OrderID)
		}
		order.OrderStatus = models.OrderStatusCancelled
		return nil
	})
}

func (r *GORMOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *GORMOrderRepository) CountByStatus(ctx context.Context) (map[models.OrderStatus]int64, error) {
	var rows []struct {
		OrderStatus models.OrderStatus
		Total       int64
	}
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("order_status, COUNT(*) AS total").
		Group("order_status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}
	counts := make(map[models.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.OrderStatus] = row.Total
	}
	return counts, nil
}

// Revenue sums the amounts of all orders in the given status.
func (r *GORMOrderRepository) Revenue(ctx context.Context, status models.OrderStatus) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("SUM(order_amount)").
		Where("order_status = ?", status).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum order revenue: %w", err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
