package models

import (
	"time"

	"shop/internal/codegen"

	"gorm.io/gorm"
)

// Brand groups products by manufacturer.
type Brand struct {
	BrandID          uint      `gorm:"primaryKey"`
	BrandCode        string    `gorm:"size:10;uniqueIndex;not null"`
	BrandName        string    `gorm:"size:100;not null"`
	BrandDescription string    `gorm:"size:1000"`
	Products         []Product `gorm:"foreignKey:BrandID;references:BrandID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.BrandCode != "" {
		return nil
	}
	code, err := codegen.Unique(tx, codegen.PrefixBrand, &Brand{}, "brand_code")
	if err != nil {
		return err
	}
	b.BrandCode = code
	return nil
}
