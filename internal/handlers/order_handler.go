package handlers

import (
	"strconv"

	"shop/internal/apperrors"
	"shop/internal/dto"
	"shop/internal/middleware"
	"shop/internal/response"
	"shop/internal/services"
	"shop/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validation.Validator
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, guards middleware.Guards) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/calculate-amount", h.HandleCalculateAmount)
	orderRoutes.Get("/", guards.Staff, h.HandleGetOrders)
	orderRoutes.Get("/code/:code", guards.User, h.HandleGetOrderByCode)
	orderRoutes.Get("/user/:userId", guards.User, h.HandleGetOrdersByUser)
	orderRoutes.Get("/status/:status", guards.Staff, h.HandleGetOrdersByStatus)
	orderRoutes.Get("/:id", guards.User, h.HandleGetOrderByID)
	orderRoutes.Post("/", guards.User, h.HandleCreateOrder)
	orderRoutes.Put("/:id/status", guards.Staff, h.HandleUpdateOrderStatus)
	orderRoutes.Put("/:id/payment", guards.Staff, h.HandleUpdatePayment)
	orderRoutes.Put("/:id/cancel", guards.User, h.HandleCancelOrder)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Orders retrieved successfully", dto.NewOrderResponses(orders)))
}

// HandleGetOrderByID retrieves a single order. Customers only see their own.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if err := middleware.RequireSelfOrStaff(c, order.UserID); err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Order retrieved successfully", dto.NewOrderResponse(order)))
}

func (h *OrderHandler) HandleGetOrderByCode(c *fiber.Ctx) error {
	order, err := h.service.GetByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	if err := middleware.RequireSelfOrStaff(c, order.UserID); err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Order retrieved successfully", dto.NewOrderResponse(order)))
}

func (h *OrderHandler) HandleGetOrdersByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	if err := middleware.RequireSelfOrStaff(c, userID); err != nil {
		return err
	}
	orders, err := h.service.GetByUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("User orders retrieved successfully", dto.NewOrderResponses(orders)))
}

func (h *OrderHandler) HandleGetOrdersByStatus(c *fiber.Ctx) error {
	orders, err := h.service.GetByStatus(c.UserContext(), c.Params("status"))
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Orders by status retrieved successfully", dto.NewOrderResponses(orders)))
}

// HandleCreateOrder places an order for the authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	claims, err := middleware.CurrentClaims(c)
	if err != nil {
		return err
	}
	var req dto.OrderRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}
	order, err := h.service.Create(c.UserContext(), claims.UserID, req)
	if err != nil {
		return err
	}
	return response.Created(c, "Order created successfully", dto.NewOrderResponse(order))
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	status, err := requiredQuery(c, "status")
	if err != nil {
		return err
	}
	order, err := h.service.UpdateStatus(c.UserContext(), id, status)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Order status updated successfully", dto.NewOrderResponse(order)))
}

func (h *OrderHandler) HandleUpdatePayment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	method, err := requiredQuery(c, "paymentMethod")
	if err != nil {
		return err
	}
	order, err := h.service.UpdatePayment(c.UserContext(), id, method)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Order payment updated successfully", dto.NewOrderResponse(order)))
}

// HandleCancelOrder cancels an order; customers may cancel only their own.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if err := middleware.RequireSelfOrStaff(c, order.UserID); err != nil {
		return err
	}
	if _, err := h.service.Cancel(c.UserContext(), id); err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Order cancelled successfully", nil))
}

// HandleCalculateAmount prices productIds against quantities, both given as
// comma separated lists.
func (h *OrderHandler) HandleCalculateAmount(c *fiber.Ctx) error {
	rawIDs, rawQty := queryList(c, "productIds"), queryList(c, "quantities")
	if len(rawIDs) == 0 {
		return apperrors.BadRequest("Query parameter 'productIds' is required")
	}

	ids := make([]uint, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return apperrors.BadRequest("Invalid product id: %s", raw)
		}
		ids = append(ids, uint(id))
	}
	quantities := make([]int, 0, len(rawQty))
	for _, raw := range rawQty {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return apperrors.BadRequest("Invalid quantity: %s", raw)
		}
		quantities = append(quantities, n)
	}

	amount, err := h.service.CalculateAmount(c.UserContext(), ids, quantities)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Order amount calculated", dto.AmountResponse{OrderAmount: amount}))
}
