package services

import (
	"context"
	"strings"

	"shop/internal/apperrors"
	"shop/internal/dto"
	"shop/internal/models"
	"shop/internal/repositories"
)

// BrandService handles business logic related to brands.
type BrandService struct {
	repo repositories.BrandRepository
}

func NewBrandService(repo repositories.BrandRepository) *BrandService {
	return &BrandService{repo: repo}
}

func (s *BrandService) GetAll(ctx context.Context) ([]models.Brand, error) {
	return s.repo.FindAll(ctx)
}

func (s *BrandService) GetByID(ctx context.Context, id uint) (*models.Brand, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BrandService) GetByCode(ctx context.Context, code string) (*models.Brand, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *BrandService) Create(ctx context.Context, req dto.BrandRequest) (*models.Brand, error) {
	brand := &models.Brand{
		BrandName:        strings.TrimSpace(req.BrandName),
		BrandDescription: req.BrandDescription,
	}
	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Update(ctx context.Context, id uint, req dto.BrandRequest) (*models.Brand, error) {
	brand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	brand.BrandName = strings.TrimSpace(req.BrandName)
	brand.BrandDescription = req.BrandDescription
	if err := s.repo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Delete removes a brand that no product refers to.
func (s *BrandService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	count, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.BadRequest("Cannot delete brand that still has %d product(s)", count)
	}
	return s.repo.Delete(ctx, id)
}
