package services

import (
	"context"
	"log"

	"shop/internal/apperrors"
	"shop/internal/dto"
	"shop/internal/events"
	"shop/internal/models"
	"shop/internal/repositories"

	"github.com/shopspring/decimal"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	events      *events.Emitter
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
	emitter *events.Emitter,
) *OrderService {
	if emitter == nil {
		emitter = events.NewEmitter(nil)
	}
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		events:      emitter,
	}
}

func (s *OrderService) GetAll(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *OrderService) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

func (s *OrderService) GetByCode(ctx context.Context, code string) (*models.Order, error) {
	return s.orderRepo.FindByCode(ctx, code)
}

func (s *OrderService) GetByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.orderRepo.FindByUser(ctx, userID)
}

func (s *OrderService) GetByStatus(ctx context.Context, statusName string) ([]models.Order, error) {
	status, err := models.ParseOrderStatus(statusName)
	if err != nil {
		return nil, apperrors.BadRequest("%s", err.Error())
	}
	return s.orderRepo.FindByStatus(ctx, status)
}

// Create places an order for userID. Prices are taken from the catalog at
// this moment and the total is computed from them.
func (s *OrderService) Create(ctx context.Context, userID uint, req dto.OrderRequest) (*models.Order, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := models.OrderStatusNew
	if req.OrderStatus != "" {
		if status, err = models.ParseOrderStatus(req.OrderStatus); err != nil {
			return nil, apperrors.BadRequest("%s", err.Error())
		}
		if status.IsFinal() {
			return nil, apperrors.BadRequest("A new order cannot start as %s", status)
		}
	}

	order := &models.Order{
		UserID:          user.UserID,
		OrderDate:       models.Today(),
		OrderStatus:     status,
		ShippingAddress: req.ShippingAddress,
		ShippingPhone:   req.ShippingPhone,
	}
	if order.ShippingAddress == "" {
		order.ShippingAddress = user.UserAddress
	}
	if order.ShippingPhone == "" {
		order.ShippingPhone = user.UserPhone
	}
	if req.PaymentMethod != "" {
		method, err := models.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			return nil, apperrors.BadRequest("%s", err.Error())
		}
		order.PaymentMethod = &method
	}

	requested := make(map[uint]int, len(req.OrderItems))
	for _, item := range req.OrderItems {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		requested[product.ProductID] += item.ItemQuantity
		if product.QuantityStock < requested[product.ProductID] {
			return nil, apperrors.BadRequest("Insufficient stock for product: %s. Available: %d, Requested: %d",
				product.ProductName, product.QuantityStock, requested[product.ProductID])
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID:    product.ProductID,
			ItemQuantity: item.ItemQuantity,
			ItemPrice:    product.ProductPrice,
		})
	}
	order.OrderAmount = order.Total()

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	log.Printf("Order %s created for user %d, amount %s", order.OrderCode, order.UserID, order.OrderAmount.StringFixed(2))

	created, err := s.orderRepo.FindByID(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}
	s.events.Emit(ctx, events.NewOrderEvent(events.OrderCreated, created, ""))
	return created, nil
}

// UpdateStatus moves an order to statusName. Delivered and Cancelled orders
// are final; delivering stamps the payment date and cancelling restocks.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, statusName string) (*models.Order, error) {
	status, err := models.ParseOrderStatus(statusName)
	if err != nil {
		return nil, apperrors.BadRequest("%s", err.Error())
	}
	if status == models.OrderStatusCancelled {
		return s.Cancel(ctx, id)
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.OrderStatus.IsFinal() {
		return nil, apperrors.BadRequest("Cannot update status of order that is already %s", order.OrderStatus)
	}

	previous := order.OrderStatus
	order.OrderStatus = status
	if status == models.OrderStatusDelivered && order.PaymentDate == nil {
		today := models.Today()
		order.PaymentDate = &today
	}
	if err := s.orderRepo.UpdateStatus(ctx, order, previous); err != nil {
		return nil, err
	}
	s.events.Emit(ctx, events.NewOrderEvent(events.OrderStatusChanged, order, previous))
	return order, nil
}

// UpdatePayment records the payment method and stamps today as payment date.
func (s *OrderService) UpdatePayment(ctx context.Context, id uint, methodName string) (*models.Order, error) {
	method, err := models.ParsePaymentMethod(methodName)
	if err != nil {
		return nil, apperrors.BadRequest("%s", err.Error())
	}
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.OrderStatus == models.OrderStatusCancelled {
		return nil, apperrors.BadRequest("Cannot update payment of a cancelled order")
	}

	today := models.Today()
	order.PaymentMethod = &method
	order.PaymentDate = &today
	if err := s.orderRepo.UpdateStatus(ctx, order, order.OrderStatus); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel cancels a New or Processing order and returns its items to stock.
func (s *OrderService) Cancel(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.OrderStatus.Cancellable() {
		return nil, apperrors.BadRequest("Cannot cancel order with status: %s", order.OrderStatus)
	}

	previous := order.OrderStatus
	if err := s.orderRepo.Cancel(ctx, order); err != nil {
		return nil, err
	}
	s.events.Emit(ctx, events.NewOrderEvent(events.OrderCancelled, order, previous))
	return order, nil
}

// CalculateAmount prices quantities[i] units of productIDs[i] at current prices.
func (s *OrderService) CalculateAmount(ctx context.Context, productIDs []uint, quantities []int) (decimal.Decimal, error) {
	if len(productIDs) != len(quantities) {
		return decimal.Zero, apperrors.BadRequest("Product IDs and quantities must have the same size")
	}
	total := decimal.Zero
	for i, id := range productIDs {
		if quantities[i] < 1 {
			return decimal.Zero, apperrors.BadRequest("Quantity for product %d must be at least 1", id)
		}
		product, err := s.productRepo.FindByID(ctx, id)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(models.LineTotal(product.ProductPrice, quantities[i]))
	}
	return total, nil
}
