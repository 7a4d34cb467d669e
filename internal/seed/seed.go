// Package seed fills an empty database with demo accounts and a small catalog.
package seed

import (
	"context"
	"fmt"
	"log"

	"shop/internal/dto"
	"shop/internal/services"

	"github.com/shopspring/decimal"
)

// Seeder writes demo data through the services so every business rule applies.
type Seeder struct {
	Brands   *services.BrandService
	Products *services.ProductService
	Images   *services.ImageService
	Users    *services.UserService
}

type demoProduct struct {
	name        string
	description string
	price       string
	stock       int
	images      []string
}

var demoUsers = []dto.CreateUserRequest{
	{UserName: "Shop Admin", UserGender: "Other", UserPhone: "0900000001", UserAccount: "admin", UserPassword: "admin123", UserRole: "Admin"},
	{UserName: "Shop Staff", UserGender: "Female", UserPhone: "0900000002", UserAccount: "staff", UserPassword: "staff123", UserRole: "Staff"},
	{UserName: "Demo Customer", UserGender: "Male", UserPhone: "0900000003", UserAccount: "customer", UserPassword: "customer123", UserRole: "Customer", UserAddress: "12 Harbour Road"},
}

var demoCatalog = []struct {
	brand    dto.BrandRequest
	products []demoProduct
}{
	{
		brand: dto.BrandRequest{BrandName: "Ocean Butterfly", BrandDescription: "House brand of swimwear and beach accessories"},
		products: []demoProduct{
			{"Butterfly Swimsuit", "One piece swimsuit with butterfly print", "349000.00", 25, []string{"https://cdn.oceanbutterflyshop.com/img/swimsuit-front.jpg", "https://cdn.oceanbutterflyshop.com/img/swimsuit-back.jpg"}},
			{"Beach Towel XL", "Quick dry microfiber towel", "129000.00", 40, []string{"https://cdn.oceanbutterflyshop.com/img/towel.png"}},
		},
	},
	{
		brand: dto.BrandRequest{BrandName: "Sea Breeze", BrandDescription: "Sun care and outdoor gear"},
		products: []demoProduct{
			{"Sunscreen SPF50", "Water resistant sunscreen 100ml", "89500.00", 60, []string{"https://cdn.oceanbutterflyshop.com/img/sunscreen.webp"}},
			{"Snorkel Set", "Mask and dry-top snorkel", "275000.00", 4, nil},
		},
	},
}

// Run seeds when the catalog is empty. Accounts that already exist are kept.
func (s *Seeder) Run(ctx context.Context) error {
	brands, err := s.Brands.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(brands) > 0 {
		log.Printf("Seed skipped: %d brand(s) already present", len(brands))
		return nil
	}

	for _, req := range demoUsers {
		exists, err := s.Users.ExistsByAccount(ctx, req.UserAccount)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		user, err := s.Users.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", req.UserAccount, err)
		}
		log.Printf("Seeded user: %s (%s, %s)", user.UserAccount, user.UserCode, user.UserRole)
	}

	for _, entry := range demoCatalog {
		brand, err := s.Brands.Create(ctx, entry.brand)
		if err != nil {
			return fmt.Errorf("seed brand %s: %w", entry.brand.BrandName, err)
		}
		for _, p := range entry.products {
			product, err := s.Products.Create(ctx, dto.ProductRequest{
				ProductName:        p.name,
				ProductDescription: p.description,
				ProductPrice:       decimal.RequireFromString(p.price),
				QuantityStock:      p.stock,
				BrandID:            brand.BrandID,
			})
			if err != nil {
				return fmt.Errorf("seed product %s: %w", p.name, err)
			}
			for i, url := range p.images {
				_, err := s.Images.Create(ctx, dto.ImageRequest{
					ImageName: fmt.Sprintf("%s %d", p.name, i+1),
					ImageURL:  url,
					ProductID: product.ProductID,
				})
				if err != nil {
					return fmt.Errorf("seed image %s: %w", url, err)
				}
			}
			log.Printf("Seeded product: %s (ID: %d)", product.ProductName, product.ProductID)
		}
	}
	return nil
}
