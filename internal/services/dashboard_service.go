package services

import (
	"context"

	"shop/internal/dto"
	"shop/internal/models"
	"shop/internal/repositories"
)

// LowStockThreshold is the stock level at or below which a product is
// reported as running low.
const LowStockThreshold = 5

// DashboardService aggregates shop-wide statistics for staff.
type DashboardService struct {
	brandRepo   repositories.BrandRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	orderRepo   repositories.OrderRepository
}

func NewDashboardService(
	brandRepo repositories.BrandRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
	orderRepo repositories.OrderRepository,
) *DashboardService {
	return &DashboardService{
		brandRepo:   brandRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		orderRepo:   orderRepo,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	var (
		stats dto.DashboardStats
		err   error
	)
	if stats.TotalBrands, err = s.brandRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.productRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = s.orderRepo.Count(ctx); err != nil {
		return nil, err
	}

	byStatus, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.OrdersByStatus = make(map[string]int64, len(models.OrderStatusNames()))
	for _, name := range models.OrderStatusNames() {
		stats.OrdersByStatus[name] = byStatus[models.OrderStatus(name)]
	}

	if stats.DeliveredRevenue, err = s.orderRepo.Revenue(ctx, models.OrderStatusDelivered); err != nil {
		return nil, err
	}
	if stats.LowStockProducts, err = s.productRepo.CountLowStock(ctx, LowStockThreshold); err != nil {
		return nil, err
	}
	return &stats, nil
}
