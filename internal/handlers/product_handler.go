package handlers

import (
	"strconv"

	"shop/internal/dto"
	"shop/internal/middleware"
	"shop/internal/response"
	"shop/internal/services"
	"shop/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const HeaderTotalCount = "X-Total-Count"

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validation.Validator
}

func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, guards middleware.Guards) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/code/:code", h.HandleGetProductByCode)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", guards.Staff, h.HandleCreateProduct)
	productRoutes.Put("/:id", guards.Staff, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", guards.Staff, h.HandleDeleteProduct)
}

// HandleGetProducts lists products filtered by name, brandId, minPrice and
// maxPrice. The unpaged match count is sent in X-Total-Count.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	var (
		q   = dto.ProductQuery{Name: c.Query("name")}
		err error
	)
	brandID, err := queryInt(c, "brandId")
	if err != nil {
		return err
	}
	q.BrandID = uint(brandID)
	if q.MinPrice, err = queryDecimal(c, "minPrice"); err != nil {
		return err
	}
	if q.MaxPrice, err = queryDecimal(c, "maxPrice"); err != nil {
		return err
	}
	if q.Page, err = queryInt(c, "page"); err != nil {
		return err
	}
	if q.Size, err = queryInt(c, "size"); err != nil {
		return err
	}

	products, total, err := h.service.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	c.Set(HeaderTotalCount, strconv.FormatInt(total, 10))
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Products retrieved successfully", dto.NewProductResponses(products)))
}

func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Product retrieved successfully", dto.NewProductResponse(product)))
}

func (h *ProductHandler) HandleGetProductByCode(c *fiber.Ctx) error {
	product, err := h.service.GetByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Product retrieved successfully", dto.NewProductResponse(product)))
}

func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}
	product, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Created(c, "Product created successfully", dto.NewProductResponse(product))
}

func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ProductRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}
	product, err := h.service.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Product updated successfully", dto.NewProductResponse(product)))
}

func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Product deleted successfully", nil))
}
