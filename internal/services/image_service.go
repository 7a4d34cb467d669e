package services

import (
	"context"
	"strings"

	"shop/internal/dto"
	"shop/internal/models"
	"shop/internal/repositories"
)

// ImageService handles business logic related to product images.
type ImageService struct {
	imageRepo   repositories.ImageRepository
	productRepo repositories.ProductRepository
}

func NewImageService(imageRepo repositories.ImageRepository, productRepo repositories.ProductRepository) *ImageService {
	return &ImageService{
		imageRepo:   imageRepo,
		productRepo: productRepo,
	}
}

func (s *ImageService) GetAll(ctx context.Context) ([]models.Image, error) {
	return s.imageRepo.FindAll(ctx)
}

func (s *ImageService) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	return s.imageRepo.FindByID(ctx, id)
}

func (s *ImageService) GetByProduct(ctx context.Context, productID uint) ([]models.Image, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.imageRepo.FindByProduct(ctx, productID)
}

func (s *ImageService) Create(ctx context.Context, req dto.ImageRequest) (*models.Image, error) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}
	image := &models.Image{
		ImageName: strings.TrimSpace(req.ImageName),
		ImageURL:  strings.TrimSpace(req.ImageURL),
		ProductID: req.ProductID,
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *ImageService) Update(ctx context.Context, id uint, req dto.ImageRequest) (*models.Image, error) {
	image, err := s.imageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if image.ProductID != req.ProductID {
		if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
			return nil, err
		}
	}
	image.ImageName = strings.TrimSpace(req.ImageName)
	image.ImageURL = strings.TrimSpace(req.ImageURL)
	image.ProductID = req.ProductID
	if err := s.imageRepo.Update(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *ImageService) Delete(ctx context.Context, id uint) error {
	return s.imageRepo.Delete(ctx, id)
}

// DeleteByProduct removes every image of an existing product.
func (s *ImageService) DeleteByProduct(ctx context.Context, productID uint) (int64, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return 0, err
	}
	return s.imageRepo.DeleteByProduct(ctx, productID)
}
