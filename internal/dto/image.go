package dto

import "shop/internal/models"

type ImageRequest struct {
	ImageName string `json:"imageName" validate:"required,max=100"`
	ImageURL  string `json:"imageURL" validate:"required,max=255,imageurl"`
	ProductID uint   `json:"productId" validate:"required"`
}

type ImageResponse struct {
	ImageID   uint   `json:"imageId"`
	ImageName string `json:"imageName"`
	ImageURL  string `json:"imageURL"`
	ProductID uint   `json:"productId"`
}

func NewImageResponse(img *models.Image) ImageResponse {
	return ImageResponse{
		ImageID:   img.ImageID,
		ImageName: img.ImageName,
		ImageURL:  img.ImageURL,
		ProductID: img.ProductID,
	}
}

func NewImageResponses(images []models.Image) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for i := range images {
		out = append(out, NewImageResponse(&images[i]))
	}
	return out
}
