package services

import (
	"context"
	"strings"

	"shop/internal/apperrors"
	"shop/internal/dto"
	"shop/internal/models"
	"shop/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	productRepo repositories.ProductRepository
	brandRepo   repositories.BrandRepository
}

func NewProductService(productRepo repositories.ProductRepository, brandRepo repositories.BrandRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		brandRepo:   brandRepo,
	}
}

// List returns the matching products and the number of matches before paging.
func (s *ProductService) List(ctx context.Context, q dto.ProductQuery) ([]models.Product, int64, error) {
	if q.MinPrice != nil && q.MaxPrice != nil && q.MinPrice.GreaterThan(*q.MaxPrice) {
		return nil, 0, apperrors.BadRequest("minPrice must not be greater than maxPrice")
	}
	return s.productRepo.Find(ctx, repositories.ProductFilter{
		Name:     strings.TrimSpace(q.Name),
		BrandID:  q.BrandID,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Page:     q.Page,
		Size:     q.Size,
	})
}

func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *ProductService) GetByCode(ctx context.Context, code string) (*models.Product, error) {
	return s.productRepo.FindByCode(ctx, code)
}

func (s *ProductService) GetByBrand(ctx context.Context, brandID uint) ([]models.Product, error) {
	if _, err := s.brandRepo.FindByID(ctx, brandID); err != nil {
		return nil, err
	}
	products, _, err := s.productRepo.Find(ctx, repositories.ProductFilter{BrandID: brandID})
	return products, err
}

func (s *ProductService) Create(ctx context.Context, req dto.ProductRequest) (*models.Product, error) {
	if _, err := s.brandRepo.FindByID(ctx, req.BrandID); err != nil {
		return nil, err
	}
	product := &models.Product{
		ProductName:        strings.TrimSpace(req.ProductName),
		ProductDescription: req.ProductDescription,
		ProductPrice:       req.ProductPrice.Round(2),
		QuantityStock:      req.QuantityStock,
		BrandID:            req.BrandID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return s.productRepo.FindByID(ctx, product.ProductID)
}

func (s *ProductService) Update(ctx context.Context, id uint, req dto.ProductRequest) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.BrandID != req.BrandID {
		if _, err := s.brandRepo.FindByID(ctx, req.BrandID); err != nil {
			return nil, err
		}
	}
	product.ProductName = strings.TrimSpace(req.ProductName)
	product.ProductDescription = req.ProductDescription
	product.ProductPrice = req.ProductPrice.Round(2)
	product.QuantityStock = req.QuantityStock
	product.BrandID = req.BrandID
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.productRepo.FindByID(ctx, id)
}

// Delete removes a product and its images unless it appears in an order.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	ordered, err := s.productRepo.IsOrdered(ctx, id)
	if err != nil {
		return err
	}
	if ordered {
		return apperrors.BadRequest("Cannot delete product that has been ordered")
	}
	return s.productRepo.Delete(ctx, id)
}
