package models

import (
	"time"

	"shop/internal/codegen"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a purchase placed by a user. OrderAmount is always derived from
// the items.
type Order struct {
	OrderID         uint            `gorm:"primaryKey"`
	OrderCode       string          `gorm:"size:10;uniqueIndex;not null"`
	UserID          uint            `gorm:"not null;index"`
	User            *User           `gorm:"foreignKey:UserID;references:UserID"`
	OrderDate       Date            `gorm:"type:date;not null"`
	OrderStatus     OrderStatus     `gorm:"size:20;not null;index"`
	OrderAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ShippingAddress string          `gorm:"size:200"`
	ShippingPhone   string          `gorm:"size:11"`
	PaymentDate     *Date           `gorm:"type:date"`
	PaymentMethod   *PaymentMethod  `gorm:"size:20"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;references:OrderID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderCode != "" {
		return nil
	}
	code, err := codegen.Unique(tx, codegen.PrefixOrder, &Order{}, "order_code")
	if err != nil {
		return err
	}
	o.OrderCode = code
	return nil
}

// Total sums price times quantity over all items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(LineTotal(item.ItemPrice, item.ItemQuantity))
	}
	return total
}

// OrderItem is one product line of an order with the price at purchase time.
type OrderItem struct {
	OrderItemID  uint            `gorm:"primaryKey"`
	OrderID      uint            `gorm:"not null;index"`
	ProductID    uint            `gorm:"not null;index"`
	Product      *Product        `gorm:"foreignKey:ProductID;references:ProductID"`
	ItemQuantity int             `gorm:"not null"`
	ItemPrice    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// All lists every persisted model in migration order.
func All() []any {
	return []any{&Brand{}, &Product{}, &Image{}, &User{}, &Order{}, &OrderItem{}}
}
