// Package server assembles repositories, services and handlers into a Fiber app.
package server

import (
	"time"

	"shop/internal/config"
	"shop/internal/database"
	"shop/internal/docs"
	"shop/internal/events"
	"shop/internal/handlers"
	"shop/internal/middleware"
	"shop/internal/repositories"
	"shop/internal/response"
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Services is the business layer shared by the HTTP API and the seeder.
type Services struct {
	Brands    *services.BrandService
	Products  *services.ProductService
	Images    *services.ImageService
	Users     *services.UserService
	Orders    *services.OrderService
	Auth      *services.AuthService
	Dashboard *services.DashboardService
}

// NewServices builds every service on top of the GORM repositories.
func NewServices(db *gorm.DB, jwt config.JWT, emitter *events.Emitter) *Services {
	brandRepo := repositories.NewGORMBrandRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	imageRepo := repositories.NewGORMImageRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	return &Services{
		Brands:    services.NewBrandService(brandRepo),
		Products:  services.NewProductService(productRepo, brandRepo),
		Images:    services.NewImageService(imageRepo, productRepo),
		Users:     services.NewUserService(userRepo),
		Orders:    services.NewOrderService(orderRepo, productRepo, userRepo, emitter),
		Auth:      services.NewAuthService(userRepo, jwt.Secret, jwt.TTL),
		Dashboard: services.NewDashboardService(brandRepo, productRepo, userRepo, orderRepo),
	}
}

// New returns the configured Fiber app with every route registered.
func New(cfg *config.Config, db *gorm.DB, svc *Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} [${locals:requestid}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		httpStatus, message, dbState := fiber.StatusOK, "healthy", "connected"
		if err := database.Ping(c.UserContext(), db); err != nil {
			httpStatus, message, dbState = fiber.StatusServiceUnavailable, "unhealthy", "unreachable"
		}
		return response.Send(c, httpStatus, response.Envelope{
			Status:  httpStatus,
			Message: message,
			Data: fiber.Map{
				"time":     time.Now().Format(time.RFC3339),
				"database": dbState,
			},
		})
	})
	docs.Register(app, docs.DefaultInfo())

	guards := middleware.NewGuards(svc.Auth)
	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(svc.Auth).RegisterRoutes(apiV1, guards)
	handlers.NewBrandHandler(svc.Brands, svc.Products).RegisterRoutes(apiV1, guards)
	handlers.NewProductHandler(svc.Products).RegisterRoutes(apiV1, guards)
	handlers.NewImageHandler(svc.Images).RegisterRoutes(apiV1, guards)
	handlers.NewUserHandler(svc.Users).RegisterRoutes(apiV1, guards)
	handlers.NewOrderHandler(svc.Orders).RegisterRoutes(apiV1, guards)
	handlers.NewRoleHandler().RegisterRoutes(apiV1, guards)
	handlers.NewDashboardHandler(svc.Dashboard).RegisterRoutes(apiV1, guards)

	return app
}
