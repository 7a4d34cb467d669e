package models

import (
	"time"

	"shop/internal/codegen"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a sellable item of a brand.
type Product struct {
	ProductID          uint            `gorm:"primaryKey"`
	ProductCode        string          `gorm:"size:10;uniqueIndex;not null"`
	ProductName        string          `gorm:"size:100;not null;index"`
	ProductDescription string          `gorm:"size:1000"`
	ProductPrice       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	QuantityStock      int             `gorm:"not null;default:0"`
	BrandID            uint            `gorm:"not null;index"`
	Brand              *Brand          `gorm:"foreignKey:BrandID;references:BrandID"`
	Images             []Image         `gorm:"foreignKey:ProductID;references:ProductID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ProductCode != "" {
		return nil
	}
	code, err := codegen.Unique(tx, codegen.PrefixProduct, &Product{}, "product_code")
	if err != nil {
		return err
	}
	p.ProductCode = code
	return nil
}
