package dto

import (
	"time"

	"shop/internal/models"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	ProductName        string          `json:"productName" validate:"required,max=100,productname"`
	ProductDescription string          `json:"productDescription" validate:"max=1000"`
	ProductPrice       decimal.Decimal `json:"productPrice" validate:"gt=0"`
	QuantityStock      int             `json:"quantityStock" validate:"gte=0"`
	BrandID            uint            `json:"brandId" validate:"required"`
}

// ProductQuery filters the product listing. Zero values mean "no filter".
type ProductQuery struct {
	Name     string
	BrandID  uint
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     int
	Size     int
}

type ProductResponse struct {
	ProductID          uint            `json:"productId"`
	ProductCode        string          `json:"productCode"`
	ProductName        string          `json:"productName"`
	ProductDescription string          `json:"productDescription,omitempty"`
	ProductPrice       decimal.Decimal `json:"productPrice"`
	QuantityStock      int             `json:"quantityStock"`
	BrandID            uint            `json:"brandId"`
	BrandCode          string          `json:"brandCode,omitempty"`
	BrandName          string          `json:"brandName,omitempty"`
	Images             []ImageResponse `json:"images,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func NewProductResponse(p *models.Product) ProductResponse {
	resp := ProductResponse{
		ProductID:          p.ProductID,
		ProductCode:        p.ProductCode,
		ProductName:        p.ProductName,
		ProductDescription: p.ProductDescription,
		ProductPrice:       p.ProductPrice,
		QuantityStock:      p.QuantityStock,
		BrandID:            p.BrandID,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
	if p.Brand != nil {
		resp.BrandCode = p.Brand.BrandCode
		resp.BrandName = p.Brand.BrandName
	}
	if len(p.Images) > 0 {
		resp.Images = NewImageResponses(p.Images)
	}
	return resp
}

func NewProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}
