package dto

import (
	"time"

	"shop/internal/models"

	"github.com/shopspring/decimal"
)

// OrderRequest places an order for the authenticated user. Codes, amounts and
// item prices are always computed by the server.
type OrderRequest struct {
	OrderStatus     string             `json:"orderStatus" validate:"omitempty,orderstatus"`
	ShippingAddress string             `json:"shippingAddress" validate:"max=200"`
	ShippingPhone   string             `json:"shippingPhone" validate:"omitempty,phone"`
	PaymentMethod   string             `json:"paymentMethod" validate:"omitempty,paymentmethod"`
	OrderItems      []OrderItemRequest `json:"orderItems" validate:"required,min=1,dive"`
}

type OrderItemRequest struct {
	ProductID    uint `json:"productId" validate:"required"`
	ItemQuantity int  `json:"itemQuantity" validate:"min=1"`
}

type OrderResponse struct {
	OrderID         uint                `json:"orderId"`
	OrderCode       string              `json:"orderCode"`
	UserID          uint                `json:"userId"`
	UserName        string              `json:"userName,omitempty"`
	UserCode        string              `json:"userCode,omitempty"`
	OrderDate       models.Date         `json:"orderDate"`
	OrderStatus     string              `json:"orderStatus"`
	OrderAmount     decimal.Decimal     `json:"orderAmount"`
	ShippingAddress string              `json:"shippingAddress,omitempty"`
	ShippingPhone   string              `json:"shippingPhone,omitempty"`
	PaymentDate     *models.Date        `json:"paymentDate,omitempty"`
	PaymentMethod   string              `json:"paymentMethod,omitempty"`
	OrderItems      []OrderItemResponse `json:"orderItems"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type OrderItemResponse struct {
	OrderItemID  uint            `json:"orderItemId"`
	ProductID    uint            `json:"productId"`
	ProductCode  string          `json:"productCode,omitempty"`
	ProductName  string          `json:"productName,omitempty"`
	ItemQuantity int             `json:"itemQuantity"`
	ItemPrice    decimal.Decimal `json:"itemPrice"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

func NewOrderResponse(o *models.Order) OrderResponse {
	resp := OrderResponse{
		OrderID:         o.OrderID,
		OrderCode:       o.OrderCode,
		UserID:          o.UserID,
		OrderDate:       o.OrderDate,
		OrderStatus:     o.OrderStatus.DisplayName(),
		OrderAmount:     o.OrderAmount,
		ShippingAddress: o.ShippingAddress,
		ShippingPhone:   o.ShippingPhone,
		PaymentDate:     o.PaymentDate,
		OrderItems:      make([]OrderItemResponse, 0, len(o.Items)),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.User != nil {
		resp.UserName = o.User.UserName
		resp.UserCode = o.User.UserCode
	}
	if o.PaymentMethod != nil {
		resp.PaymentMethod = o.PaymentMethod.DisplayName()
	}
	for _, item := range o.Items {
		line := OrderItemResponse{
			OrderItemID:  item.OrderItemID,
			ProductID:    item.ProductID,
			ItemQuantity: item.ItemQuantity,
			ItemPrice:    item.ItemPrice,
			Subtotal:     models.LineTotal(item.ItemPrice, item.ItemQuantity),
		}
		if item.Product != nil {
			line.ProductCode = item.Product.ProductCode
			line.ProductName = item.Product.ProductName
		}
		resp.OrderItems = append(resp.OrderItems, line)
	}
	return resp
}

func NewOrderResponses(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}

// AmountResponse is the result of an order amount calculation.
type AmountResponse struct {
	OrderAmount decimal.Decimal `json:"orderAmount"`
}
