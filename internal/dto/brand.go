// Package dto holds the request and response bodies of the HTTP API.
package dto

import (
	"time"

	"shop/internal/models"
)

type BrandRequest struct {
	BrandName        string `json:"brandName" validate:"required,max=100"`
	BrandDescription string `json:"brandDescription" validate:"max=1000"`
}

type BrandResponse struct {
	BrandID          uint      `json:"brandId"`
	BrandCode        string    `json:"brandCode"`
	BrandName        string    `json:"brandName"`
	BrandDescription string    `json:"brandDescription,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func NewBrandResponse(b *models.Brand) BrandResponse {
	return BrandResponse{
		BrandID:          b.BrandID,
		BrandCode:        b.BrandCode,
		BrandName:        b.BrandName,
		BrandDescription: b.BrandDescription,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func NewBrandResponses(brands []models.Brand) []BrandResponse {
	out := make([]BrandResponse, 0, len(brands))
	for i := range brands {
		out = append(out, NewBrandResponse(&brands[i]))
	}
	return out
}
